package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseIdentifier_Valid(t *testing.T) {
	id, err := ParseCaseIdentifier("DLHC010123456789")

	require.NoError(t, err)
	assert.Equal(t, CaseIdentifier("DLHC010123456789"), id)
	assert.Equal(t, "DLHC010123456789", id.String())
}

func TestParseCaseIdentifier_NormalisesInput(t *testing.T) {
	id, err := ParseCaseIdentifier("  dlhc010123456789 ")

	require.NoError(t, err)
	assert.Equal(t, CaseIdentifier("DLHC010123456789"), id)
}

func TestParseCaseIdentifier_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "DLHC0101234"},
		{"too long", "DLHC0101234567890"},
		{"punctuation", "DLHC-10123456789"},
		{"inner space", "DLHC 10123456789"},
		{"non ascii", "DLHC01012345678é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCaseIdentifier(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestCaseIdentifier_Suffix(t *testing.T) {
	id := CaseIdentifier("DLHC010123456789")

	assert.Equal(t, "6789", id.Suffix(4))
	assert.Equal(t, "DLHC010123456789", id.Suffix(20))
}

func TestCaseRecord_Clone(t *testing.T) {
	orig := CaseRecord{"Status": "Pending"}
	clone := orig.Clone()
	clone["Status"] = "Disposed"

	assert.Equal(t, "Pending", orig["Status"])
}

func TestDetailsQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   DetailsQuery
		wantErr bool
	}{
		{"complete", DetailsQuery{CaseType: "Civil", CaseNumber: "123", CaseYear: "2025"}, false},
		{"with party", DetailsQuery{CaseType: "Civil", CaseNumber: "123", CaseYear: "2025", PartyName: "Ram"}, false},
		{"missing type", DetailsQuery{CaseNumber: "123", CaseYear: "2025"}, true},
		{"missing number", DetailsQuery{CaseType: "Civil", CaseYear: "2025"}, true},
		{"short year", DetailsQuery{CaseType: "Civil", CaseNumber: "123", CaseYear: "25"}, true},
		{"alpha year", DetailsQuery{CaseType: "Civil", CaseNumber: "123", CaseYear: "20x5"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDetailsQuery_CaseNumberLabel(t *testing.T) {
	q := DetailsQuery{CaseType: " Civil ", CaseNumber: "123 ", CaseYear: "2025"}.Normalize()

	assert.Equal(t, "Civil 123/2025", q.CaseNumberLabel())
}

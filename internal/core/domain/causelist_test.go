package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorKey_Normalize(t *testing.T) {
	key := SelectorKey{State: "  Delhi ", District: "New   Delhi", Complex: "Patiala House\tCourt Comp"}

	got := key.Normalize()

	assert.Equal(t, SelectorKey{State: "Delhi", District: "New Delhi", Complex: "Patiala House Court Comp"}, got)
}

func TestSelectorKey_LookupKeyIgnoresCaseAndSpacing(t *testing.T) {
	a := SelectorKey{State: "Delhi", District: "New Delhi", Complex: "Patiala House Court Comp"}
	b := SelectorKey{State: "DELHI", District: " new  delhi", Complex: "patiala house court comp"}

	assert.Equal(t, a.LookupKey(), b.LookupKey())
	assert.NotEqual(t, a.LookupKey(), SelectorKey{State: "Delhi"}.LookupKey())
}

func TestCauseListEntry_ColumnsCanonicalOrder(t *testing.T) {
	entry := CauseListEntry{
		"remarks":     "Part heard",
		"case_no":     "CS 1/2025",
		"sr_no":       "1",
		"zeta":        "z",
		"advocate":    "Ms. Rao",
		"alpha":       "a",
		"party_names": "A vs B",
	}

	assert.Equal(t,
		[]string{"sr_no", "case_no", "party_names", "advocate", "remarks", "alpha", "zeta"},
		entry.Columns())
}

func TestCauseListEntry_Clone(t *testing.T) {
	orig := CauseListEntry{"sr_no": "1"}
	clone := orig.Clone()
	clone["sr_no"] = "2"

	assert.Equal(t, "1", orig["sr_no"])
}

func TestCauseList_Rows(t *testing.T) {
	list := &CauseList{Cases: []CauseListEntry{{"sr_no": "1"}, {"sr_no": "2"}}}

	var tab Tabular = list
	assert.Len(t, tab.Rows(), 2)
}

func TestParseListDate(t *testing.T) {
	now := time.Date(2025, 10, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"portal format", "17/10/2025", "17/10/2025"},
		{"iso format", "2025-10-20", "20/10/2025"},
		{"empty uses today", "", "17/10/2025"},
		{"padded", " 01/01/2025 ", "01/01/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListDate_Invalid(t *testing.T) {
	for _, input := range []string{"17-10-2025", "32/01/2025", "tomorrow", "2025/10/17"} {
		_, err := ParseListDate(input, time.Now())
		assert.ErrorIs(t, err, ErrValidation, input)
	}
}

func TestSelectorKey_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultSelectorKey, SelectorKey{}.WithDefaults())

	got := SelectorKey{State: " Karnataka ", District: "Mysore"}.WithDefaults()
	assert.Equal(t, SelectorKey{State: "Karnataka", District: "Mysore", Complex: "Patiala House Court Comp"}, got)
}

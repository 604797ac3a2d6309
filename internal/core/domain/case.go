package domain

import (
	"fmt"
	"strings"
)

// CaseIdentifierLength is the fixed length of a CNR.
const CaseIdentifierLength = 16

// CaseIdentifier is a validated Case Number Record (CNR), the 16-character
// alphanumeric code that addresses exactly one case on the portal.
// Construct it with ParseCaseIdentifier.
type CaseIdentifier string

// ParseCaseIdentifier validates s and returns it as a CaseIdentifier.
// Surrounding whitespace is ignored and letters are upper-cased.
func ParseCaseIdentifier(s string) (CaseIdentifier, error) {
	cnr := strings.ToUpper(strings.TrimSpace(s))
	if len(cnr) != CaseIdentifierLength {
		return "", fmt.Errorf("%w: CNR must be exactly %d characters, got %d",
			ErrValidation, CaseIdentifierLength, len(cnr))
	}
	for _, r := range cnr {
		if !isAlphanumeric(r) {
			return "", fmt.Errorf("%w: CNR must be alphanumeric, found %q", ErrValidation, r)
		}
	}
	return CaseIdentifier(cnr), nil
}

// String returns the identifier text.
func (c CaseIdentifier) String() string {
	return string(c)
}

// Suffix returns the last n characters of the identifier.
func (c CaseIdentifier) Suffix(n int) string {
	if n >= len(c) {
		return string(c)
	}
	return string(c[len(c)-n:])
}

func isAlphanumeric(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// CaseRecord maps field names to values as yielded by the portal or the
// synthetic dataset. It has no fixed schema.
type CaseRecord map[string]string

// Clone returns an independent copy of the record.
func (r CaseRecord) Clone() CaseRecord {
	out := make(CaseRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Listing is one scheduled appearance of a case on a given day.
type Listing struct {
	// Date is the hearing date in DD/MM/YYYY.
	Date string `json:"date"`

	// SerialNo is the case's position in the day's cause list.
	SerialNo string `json:"serial_no"`

	// CourtName is the courtroom or bench hearing the case.
	CourtName string `json:"court_name"`

	// Purpose is the stage of the hearing (e.g. "For Arguments").
	Purpose string `json:"purpose"`
}

// CaseResult is the outcome of a case search.
type CaseResult struct {
	// Details holds the case fields.
	Details CaseRecord `json:"case_details"`

	// Listings holds today/tomorrow listings when they were requested.
	Listings []Listing `json:"listings,omitempty"`
}

// DetailsQuery addresses a case by its type, number and year.
type DetailsQuery struct {
	CaseType   string `json:"case_type"`
	CaseNumber string `json:"case_number"`
	CaseYear   string `json:"case_year"`

	// PartyName is optional and narrows the search.
	PartyName string `json:"party_name,omitempty"`
}

// Validate checks that the required fields are present and the year is well formed.
func (q DetailsQuery) Validate() error {
	if strings.TrimSpace(q.CaseType) == "" {
		return fmt.Errorf("%w: case type is required", ErrValidation)
	}
	if strings.TrimSpace(q.CaseNumber) == "" {
		return fmt.Errorf("%w: case number is required", ErrValidation)
	}
	year := strings.TrimSpace(q.CaseYear)
	if len(year) != 4 {
		return fmt.Errorf("%w: case year must be four digits", ErrValidation)
	}
	for _, r := range year {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: case year must be four digits", ErrValidation)
		}
	}
	return nil
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (q DetailsQuery) Normalize() DetailsQuery {
	return DetailsQuery{
		CaseType:   strings.TrimSpace(q.CaseType),
		CaseNumber: strings.TrimSpace(q.CaseNumber),
		CaseYear:   strings.TrimSpace(q.CaseYear),
		PartyName:  strings.TrimSpace(q.PartyName),
	}
}

// CaseNumberLabel formats the query the way the portal displays case numbers.
func (q DetailsQuery) CaseNumberLabel() string {
	return fmt.Sprintf("%s %s/%s", q.CaseType, q.CaseNumber, q.CaseYear)
}

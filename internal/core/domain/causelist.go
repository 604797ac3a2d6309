package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the DD/MM/YYYY layout used by the portal for dates.
const DateLayout = "02/01/2006"

// isoDateLayout is accepted on input from HTML date pickers.
const isoDateLayout = "2006-01-02"

// SelectorKey addresses a cause list by state, district and court complex.
// It is only ever used as a lookup key.
type SelectorKey struct {
	State    string `json:"state" yaml:"state"`
	District string `json:"district" yaml:"district"`
	Complex  string `json:"complex" yaml:"complex"`
}

// Normalize trims each field and collapses runs of internal whitespace.
func (k SelectorKey) Normalize() SelectorKey {
	return SelectorKey{
		State:    collapseSpace(k.State),
		District: collapseSpace(k.District),
		Complex:  collapseSpace(k.Complex),
	}
}

// LookupKey returns the case-folded form used to index fixed tables.
func (k SelectorKey) LookupKey() string {
	n := k.Normalize()
	return strings.ToLower(n.State + "|" + n.District + "|" + n.Complex)
}

// String renders the key as "State / District / Complex".
func (k SelectorKey) String() string {
	return fmt.Sprintf("%s / %s / %s", k.State, k.District, k.Complex)
}

// DefaultSelectorKey is the court complex used when a selector field is
// omitted and when a key is not in the synthetic dataset.
var DefaultSelectorKey = SelectorKey{
	State:    "Delhi",
	District: "New Delhi",
	Complex:  "Patiala House Court Comp",
}

// WithDefaults normalizes the key and fills empty fields from
// DefaultSelectorKey.
func (k SelectorKey) WithDefaults() SelectorKey {
	n := k.Normalize()
	if n.State == "" {
		n.State = DefaultSelectorKey.State
	}
	if n.District == "" {
		n.District = DefaultSelectorKey.District
	}
	if n.Complex == "" {
		n.Complex = DefaultSelectorKey.Complex
	}
	return n
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Canonical cause list column names.
const (
	ColumnSerialNo   = "sr_no"
	ColumnCaseNo     = "case_no"
	ColumnPartyNames = "party_names"
	ColumnAdvocate   = "advocate"
	ColumnCourtName  = "court_name"
	ColumnPurpose    = "purpose"
	ColumnRemarks    = "remarks"
)

var canonicalColumns = []string{
	ColumnSerialNo,
	ColumnCaseNo,
	ColumnPartyNames,
	ColumnAdvocate,
	ColumnCourtName,
	ColumnPurpose,
	ColumnRemarks,
}

// CauseListEntry is one row of a cause list keyed by column name.
// Entries carry no fixed schema; see Columns for ordering.
type CauseListEntry map[string]string

// Columns returns the entry's keys: canonical columns first, in canonical
// order, then any other keys sorted lexically.
func (e CauseListEntry) Columns() []string {
	cols := make([]string, 0, len(e))
	seen := make(map[string]bool, len(canonicalColumns))
	for _, c := range canonicalColumns {
		seen[c] = true
		if _, ok := e[c]; ok {
			cols = append(cols, c)
		}
	}

	var extra []string
	for k := range e {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(cols, extra...)
}

// Clone returns an independent copy of the entry.
func (e CauseListEntry) Clone() CauseListEntry {
	out := make(CauseListEntry, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Cause list sources recorded in metadata.
const (
	SourcePortal    = "eCourts Portal"
	SourceSynthetic = "eCourts Synthetic Dataset"
)

// CauseListMetadata describes where and when a cause list was produced.
type CauseListMetadata struct {
	Source     string `json:"source"`
	FetchedAt  string `json:"fetched_at"`
	State      string `json:"state"`
	District   string `json:"district"`
	Complex    string `json:"complex"`
	Date       string `json:"date"`
	TotalCases int    `json:"total_cases"`
}

// CauseList is a daily docket for one court complex.
// Metadata.TotalCases always equals len(Cases) and Cases keeps emission order.
type CauseList struct {
	Metadata CauseListMetadata `json:"metadata"`
	Cases    []CauseListEntry  `json:"cases"`
}

// Rows implements Tabular.
func (c *CauseList) Rows() []CauseListEntry {
	return c.Cases
}

// Tabular is implemented by results that can also be written as CSV.
type Tabular interface {
	Rows() []CauseListEntry
}

// ParseListDate validates a cause list date and returns it as DD/MM/YYYY.
// YYYY-MM-DD is also accepted. An empty string yields now's date.
func ParseListDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.Format(DateLayout), nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}
	return "", fmt.Errorf("%w: date %q must be DD/MM/YYYY", ErrValidation, s)
}

// Jurisdiction is one state with its districts and court complexes.
type Jurisdiction struct {
	State     string     `json:"state" yaml:"state"`
	Districts []District `json:"districts" yaml:"districts"`
}

// District lists the court complexes within a district.
type District struct {
	Name      string   `json:"name" yaml:"name"`
	Complexes []string `json:"complexes" yaml:"complexes"`
}

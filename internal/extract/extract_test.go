package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

const caseStatusPage = `
<html><body>
<table class="case_details_table">
  <tr><td>Case Type</td><td> Criminal Misc. </td></tr>
  <tr><td>Filing Number</td><td>1234/2025</td></tr>
  <tr><td>Registration Date</td><td></td></tr>
  <tr><td colspan="2">Case Status</td></tr>
</table>
<table class="case_status_table">
  <tr><th>Field</th><th>Value</th></tr>
  <tr><td>Next Hearing Date</td><td>20th October
      2025</td><td>ignored</td></tr>
  <tr><td>Case Type</td><td>Criminal</td></tr>
</table>
</body></html>`

func TestFields(t *testing.T) {
	record, err := Fields(caseStatusPage)

	require.NoError(t, err)
	assert.Equal(t, domain.CaseRecord{
		"Case Type":         "Criminal",
		"Filing Number":     "1234/2025",
		"Next Hearing Date": "20th October 2025",
	}, record)
}

func TestFields_NoTables(t *testing.T) {
	record, err := Fields("<html><body><p>Invalid Captcha</p></body></html>")

	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestRows(t *testing.T) {
	page := `
<table>
  <tr><th>Sr. No.</th><th>Case Number</th><th>Party Names</th><th>Advocate</th><th>Next Purpose</th></tr>
  <tr><td>1</td><td>CS 1/2025</td><td>A vs B</td><td>Ms. Rao</td><td>For Orders</td></tr>
  <tr><td>2</td><td>CS 2/2025</td></tr>
  <tr></tr>
</table>`

	rows, err := Rows(page)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.CauseListEntry{
		"sr_no":        "1",
		"case_no":      "CS 1/2025",
		"party_names":  "A vs B",
		"advocate":     "Ms. Rao",
		"next_purpose": "For Orders",
	}, rows[0])
	assert.Equal(t, domain.CauseListEntry{"sr_no": "2", "case_no": "CS 2/2025"}, rows[1])
}

func TestColumnName(t *testing.T) {
	tests := map[string]string{
		"Sr. No.":          "sr_no",
		"S.No":             "sr_no",
		"Case No":          "case_no",
		"  Party  Names ":  "party_names",
		"Court":            "court_name",
		"Advocate (Pet.)":  "advocate_pet",
		"":                 "",
	}

	for in, want := range tests {
		assert.Equal(t, want, ColumnName(in), in)
	}
}

// Package extract turns portal result pages into records.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// Fields parses every table in html into a flat field/value record.
// Each row with at least two td cells contributes its first two cells,
// trimmed, as key and value when both are non-empty. Later keys overwrite
// earlier ones.
func Fields(html string) (domain.CaseRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	record := make(domain.CaseRecord)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 2 {
			return
		}
		key := cellText(cells.Eq(0))
		value := cellText(cells.Eq(1))
		if key == "" || value == "" {
			return
		}
		record[key] = value
	})
	return record, nil
}

// Rows parses the first table with a header row into cause list entries.
// Header cells are converted to snake_case column names; rows shorter than
// the header leave the missing columns unset.
func Rows(html string) ([]domain.CauseListEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var entries []domain.CauseListEntry
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := table.Find("tr").First().ChildrenFiltered("th")
		if header.Length() == 0 {
			return true
		}
		columns := make([]string, header.Length())
		header.Each(func(i int, th *goquery.Selection) {
			columns[i] = ColumnName(cellText(th))
		})

		table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
			entry := make(domain.CauseListEntry)
			row.ChildrenFiltered("td").Each(func(i int, td *goquery.Selection) {
				if i < len(columns) && columns[i] != "" {
					entry[columns[i]] = cellText(td)
				}
			})
			if len(entry) > 0 {
				entries = append(entries, entry)
			}
		})
		return false
	})
	return entries, nil
}

// ColumnName maps a header label such as "Sr. No." to a column name
// such as "sr_no".
func ColumnName(label string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(label) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return aliases(b.String())
}

func aliases(name string) string {
	switch name {
	case "s_no", "serial_no", "sl_no", "sno":
		return domain.ColumnSerialNo
	case "case_number":
		return domain.ColumnCaseNo
	case "parties", "party_name":
		return domain.ColumnPartyNames
	case "court", "court_no":
		return domain.ColumnCourtName
	}
	return name
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// Output formats accepted by --output.
const (
	outputConsole = "console"
	outputJSON    = "json"
	outputCSV     = "csv"
)

var theme = styles.DefaultStyles()

func validateOutput(format string) error {
	switch format {
	case outputConsole, outputJSON, outputCSV:
		return nil
	default:
		return fmt.Errorf("%w: --output must be console, json or csv, got %q", domain.ErrValidation, format)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func sortedKeys(r domain.CaseRecord) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func renderCase(w io.Writer, res *domain.CaseResult, checkToday, checkTomorrow bool) {
	fmt.Fprintln(w, theme.Title.Render("Case Details"))

	keys := sortedKeys(res.Details)
	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k))
	}
	for _, k := range keys {
		label := theme.Label.Render(fmt.Sprintf("%-*s", width, k))
		fmt.Fprintf(w, "  %s  %s\n", label, theme.Value.Render(res.Details[k]))
	}

	if !checkToday && !checkTomorrow {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Listings"))
	if len(res.Listings) == 0 {
		fmt.Fprintln(w, theme.Muted.Render("  Not listed on the requested days"))
		return
	}
	for _, l := range res.Listings {
		fmt.Fprintf(w, "  %s  serial %s  %s  %s\n",
			theme.Label.Render(l.Date), l.SerialNo, l.CourtName, theme.Muted.Render(l.Purpose))
	}
}

func renderCauseList(w io.Writer, list *domain.CauseList) {
	m := list.Metadata
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("Cause List %s", m.Date)))
	fmt.Fprintf(w, "%s\n", theme.Value.Render(fmt.Sprintf("%s / %s / %s", m.State, m.District, m.Complex)))
	fmt.Fprintf(w, "%s %s  %s\n",
		theme.Muted.Render("Source:"),
		theme.Source(m.Source, m.Source == domain.SourcePortal),
		theme.Muted.Render(fmt.Sprintf("%d cases, fetched %s", m.TotalCases, m.FetchedAt)))

	if len(list.Cases) == 0 {
		fmt.Fprintln(w, theme.Muted.Render("No cases listed."))
		return
	}

	header := list.Cases[0].Columns()
	rows := make([][]string, len(list.Cases))
	for i, c := range list.Cases {
		row := make([]string, len(header))
		for j, col := range header {
			row[j] = c[col]
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Palette().Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			return theme.Cell
		}).
		Headers(columnTitles(header)...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// columnTitles turns snake_case column names into headings.
func columnTitles(cols []string) []string {
	titles := make([]string, len(cols))
	for i, c := range cols {
		words := strings.Split(c, "_")
		for j, word := range words {
			if word != "" {
				words[j] = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		titles[i] = strings.Join(words, " ")
	}
	return titles
}

func renderJurisdictions(w io.Writer, js []domain.Jurisdiction) {
	for _, j := range js {
		fmt.Fprintln(w, theme.Title.Render(j.State))
		for _, d := range j.Districts {
			fmt.Fprintf(w, "  %s\n", theme.Label.Render(d.Name))
			for _, c := range d.Complexes {
				fmt.Fprintf(w, "    %s\n", c)
			}
		}
	}
}

// save writes result through the exporter when format asks for files and
// reports the written paths.
func save(cmd *cobra.Command, format string, result any, op domain.OperationKind, params domain.TaskParams) error {
	if format == outputConsole {
		return nil
	}
	if exportService == nil {
		return fmt.Errorf("export: %w", ErrNotConfigured)
	}

	base, ok := exportService.Save(result, op, params)
	if !ok {
		return fmt.Errorf("%w: could not write %s", domain.ErrExport, base)
	}

	files := exportService.Files(result, base)
	if format == outputCSV && len(files) < 2 {
		cmd.PrintErrln(theme.Muted.Render("No tabular rows; wrote JSON only."))
	}
	for _, f := range files {
		cmd.Printf("Saved %s\n", f)
	}
	return nil
}

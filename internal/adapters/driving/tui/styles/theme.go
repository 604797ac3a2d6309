// Package styles provides the colour palette and lipgloss styles used for
// terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours used on the terminal.
type Palette struct {
	// Accent highlights headings and the progress bar.
	Accent lipgloss.Color

	// Secondary marks field labels.
	Secondary lipgloss.Color

	// Text is the default foreground.
	Text lipgloss.Color

	// Muted is for metadata and hints.
	Muted lipgloss.Color

	// Live marks results retrieved from the portal.
	Live lipgloss.Color

	// Fallback marks results served from the synthetic dataset.
	Fallback lipgloss.Color

	// Error marks failures.
	Error lipgloss.Color

	// Border frames tables.
	Border lipgloss.Color
}

// DefaultPalette returns the default colours.
func DefaultPalette() *Palette {
	return &Palette{
		Accent:    lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#06B6D4"),
		Text:      lipgloss.Color("#CDD6F4"),
		Muted:     lipgloss.Color("#6C7086"),
		Live:      lipgloss.Color("#A6E3A1"),
		Fallback:  lipgloss.Color("#F9E2AF"),
		Error:     lipgloss.Color("#F38BA8"),
		Border:    lipgloss.Color("#45475A"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	palette *Palette

	// Title renders section headings.
	Title lipgloss.Style

	// Label renders field names.
	Label lipgloss.Style

	// Value renders field values.
	Value lipgloss.Style

	// Muted renders metadata.
	Muted lipgloss.Style

	// Live renders the live source badge.
	Live lipgloss.Style

	// Fallback renders the synthetic source badge.
	Fallback lipgloss.Style

	// Error renders failure messages.
	Error lipgloss.Style

	// Header renders table header cells.
	Header lipgloss.Style

	// Cell renders table body cells.
	Cell lipgloss.Style

	// Box frames a block of output.
	Box lipgloss.Style
}

// NewStyles creates styles from a palette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	return &Styles{
		palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Value: lipgloss.NewStyle().
			Foreground(p.Text),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Live: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Live),

		Fallback: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Fallback),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default palette.
func DefaultStyles() *Styles {
	return NewStyles(DefaultPalette())
}

// Palette returns the palette used by these styles.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// Source renders a result source name, coloured by whether it came from the
// portal or the synthetic dataset.
func (s *Styles) Source(name string, live bool) string {
	if live {
		return s.Live.Render(name)
	}
	return s.Fallback.Render(name)
}

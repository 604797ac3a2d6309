package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	require.NotNil(t, p)
	for name, c := range map[string]lipgloss.Color{
		"accent":    p.Accent,
		"secondary": p.Secondary,
		"text":      p.Text,
		"muted":     p.Muted,
		"live":      p.Live,
		"fallback":  p.Fallback,
		"error":     p.Error,
		"border":    p.Border,
	} {
		assert.NotEmpty(t, string(c), name)
	}
}

func TestDefaultPalette_SourceColoursDiffer(t *testing.T) {
	p := DefaultPalette()
	assert.NotEqual(t, p.Live, p.Fallback)
	assert.NotEqual(t, p.Live, p.Error)
}

func TestNewStyles_NilPaletteUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s.Palette())
	assert.Equal(t, DefaultPalette(), s.Palette())
}

func TestStyles_SourceKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Source("eCourts Portal", true), "eCourts Portal")
	assert.Contains(t, s.Source("eCourts Synthetic Dataset", false), "eCourts Synthetic Dataset")
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	for _, style := range []lipgloss.Style{s.Title, s.Label, s.Value, s.Muted, s.Error, s.Header, s.Cell, s.Box} {
		assert.Contains(t, style.Render("Patiala House"), "Patiala House")
	}
}

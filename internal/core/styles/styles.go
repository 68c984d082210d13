// Package styles provides shared lipgloss styles and the theme palettes
// for CLI and TUI components, and derives the grid's drawing theme from
// the active palette.
package styles

import (
	"image/color"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/gridsheet/internal/grid"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// TUI shared styles.
	StatusBarStyle   lipgloss.Style
	StatusStatsStyle lipgloss.Style
	EditBarStyle     lipgloss.Style
	CellAddrStyle    lipgloss.Style
	ErrorStyle       lipgloss.Style
)

func init() {
	SetTheme(DefaultTheme)
}

// SetTheme switches the active palette and rebuilds every exported
// style. Unknown names fall back to the default theme.
func SetTheme(name string) {
	p, ok := GetPalette(name)
	if !ok {
		p = themes[DefaultTheme]
	}
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lip(p.Primary))
	DividerStyle = lipgloss.NewStyle().Foreground(lip(p.Muted))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lip(p.Foreground)).
		Background(lip(p.Surface))
	StatusStatsStyle = lipgloss.NewStyle().
		Foreground(lip(p.Secondary)).
		Background(lip(p.Surface))
	EditBarStyle = lipgloss.NewStyle().
		Foreground(lip(p.Foreground)).
		Background(lip(p.Background))
	CellAddrStyle = lipgloss.NewStyle().Bold(true).
		Foreground(lip(p.Primary)).
		Background(lip(p.Surface))
	ErrorStyle = lipgloss.NewStyle().Foreground(lip(p.Error))
}

// lip converts a palette color to a lipgloss color.
func lip(c color.Color) lipgloss.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.Color("")
	}
	return lipgloss.Color(cc.Hex())
}

// GridTheme derives the grid drawing theme from a palette. The selection
// fill is the primary color blended toward the background so cell text
// stays readable under the highlight.
func GridTheme(p Palette) grid.Theme {
	return grid.Theme{
		Background:     p.Background,
		Gridline:       p.Surface,
		CellText:       p.Foreground,
		HeaderFill:     p.Surface,
		HeaderActive:   Blend(p.Surface, p.Primary, 0.45),
		HeaderText:     p.Foreground,
		SelectionFill:  Blend(p.Background, p.Primary, 0.3),
		BoundaryBorder: p.Primary,
		InteriorBorder: Blend(p.Background, p.Primary, 0.6),
	}
}

// Blend mixes two colors in LUV space, t=0 giving a and t=1 giving b.
func Blend(a, b color.Color, t float64) color.Color {
	ca, ok := colorful.MakeColor(a)
	if !ok {
		return a
	}
	cb, ok := colorful.MakeColor(b)
	if !ok {
		return a
	}
	return ca.BlendLuv(cb, t).Clamped()
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hexStr := cc.Hex()
	return &hexStr
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg

	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary
	cfg.H4.Color = primary
	cfg.H5.Color = primary
	cfg.H6.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}

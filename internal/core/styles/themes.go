package styles

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad theme hex " + s)
	}
	return c
}

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    hex("#7aa2f7"),
		Secondary:  hex("#7dcfff"),
		Foreground: hex("#c0caf5"),
		Muted:      hex("#565f89"),
		Background: hex("#1a1b26"),
		Surface:    hex("#3b4261"),
		Success:    hex("#9ece6a"),
		Warning:    hex("#e0af68"),
		Error:      hex("#f7768e"),
	},
	"gruvbox": {
		Primary:    hex("#83a598"),
		Secondary:  hex("#8ec07c"),
		Foreground: hex("#ebdbb2"),
		Muted:      hex("#665c54"),
		Background: hex("#282828"),
		Surface:    hex("#3c3836"),
		Success:    hex("#b8bb26"),
		Warning:    hex("#fabd2f"),
		Error:      hex("#fb4934"),
	},
	"catppuccin": {
		Primary:    hex("#89b4fa"), // Blue
		Secondary:  hex("#94e2d5"), // Teal
		Foreground: hex("#cdd6f4"), // Text
		Muted:      hex("#6c7086"), // Overlay0
		Background: hex("#1e1e2e"), // Base
		Surface:    hex("#313244"), // Surface0
		Success:    hex("#a6e3a1"), // Green
		Warning:    hex("#f9e2af"), // Yellow
		Error:      hex("#f38ba8"), // Red
	},
	"onedark": {
		Primary:    hex("#61afef"), // blue
		Secondary:  hex("#56b6c2"), // cyan
		Foreground: hex("#abb2bf"), // foreground
		Muted:      hex("#5c6370"), // comment grey
		Background: hex("#282c34"), // background
		Surface:    hex("#3e4452"), // gutter grey
		Success:    hex("#98c379"), // green
		Warning:    hex("#e5c07b"), // yellow
		Error:      hex("#e06c75"), // red
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

package main

import (
	"os"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	goghthemes "github.com/willyv3/gogh-themes"
)

// defaultThemeName is used when neither the config nor ASCIICREATOR_THEME
// names a known theme.
const defaultThemeName = "Dracula"

// Theme provides all colors for the previewer and the palette used to
// quantise ANSI output.
type Theme struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Subtle     string

	// Primary ANSI colors (0-7)
	Black   string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string

	// Bright ANSI colors (8-15)
	BrightBlack   string
	BrightRed     string
	BrightGreen   string
	BrightYellow  string
	BrightBlue    string
	BrightMagenta string
	BrightCyan    string
	BrightWhite   string

	// Gray is an alias for White, used for labels
	Gray string
}

// themes registry - all themes from gogh-themes package
var themes = make(map[string]Theme)

// CurrentTheme is the active theme
var CurrentTheme Theme

// themeOrder defines the order for cycling through themes
var themeOrder []string

// InitTheme loads the registry and activates name, falling back to
// ASCIICREATOR_THEME, then Dracula, then the first theme alphabetically.
func InitTheme(name string) {
	if len(themes) == 0 {
		loadAllThemes()
		buildThemeOrder()
	}

	if name == "" {
		name = os.Getenv("ASCIICREATOR_THEME")
	}
	if name == "" {
		name = defaultThemeName
	}

	theme, exists := themes[name]
	if !exists {
		theme, exists = themes[defaultThemeName]
	}
	if !exists && len(themeOrder) > 0 {
		theme = themes[themeOrder[0]]
	}

	CurrentTheme = theme
	InitStyles()
}

// loadAllThemes loads all themes from gogh-themes package
func loadAllThemes() {
	for name, gogh := range goghthemes.All() {
		themes[name] = Theme{
			Name:       name,
			Background: gogh.Background,
			Foreground: gogh.Foreground,
			Subtle:     generateShade(gogh.Background, 1.3),

			Black:   gogh.Black,
			Red:     gogh.Red,
			Green:   gogh.Green,
			Yellow:  gogh.Yellow,
			Blue:    gogh.Blue,
			Magenta: gogh.Magenta,
			Cyan:    gogh.Cyan,
			White:   gogh.White,

			BrightBlack:   gogh.BrightBlack,
			BrightRed:     gogh.BrightRed,
			BrightGreen:   gogh.BrightGreen,
			BrightYellow:  gogh.BrightYellow,
			BrightBlue:    gogh.BrightBlue,
			BrightMagenta: gogh.BrightMagenta,
			BrightCyan:    gogh.BrightCyan,
			BrightWhite:   gogh.BrightWhite,

			Gray: gogh.White,
		}
	}
}

// buildThemeOrder creates alphabetically sorted theme cycling order
func buildThemeOrder() {
	themeOrder = make([]string, 0, len(themes))
	for name := range themes {
		themeOrder = append(themeOrder, name)
	}
	sort.Strings(themeOrder)
}

// NextTheme cycles to the next theme in the rotation and returns its name
func NextTheme() string {
	if len(themeOrder) == 0 {
		return CurrentTheme.Name
	}

	currentIndex := 0
	for i, name := range themeOrder {
		if name == CurrentTheme.Name {
			currentIndex = i
			break
		}
	}

	CurrentTheme = themes[themeOrder[(currentIndex+1)%len(themeOrder)]]
	InitStyles()
	return CurrentTheme.Name
}

// Palette returns the 16 ANSI colors plus foreground and background, skipping
// entries that are not valid hex.
func (t Theme) Palette() []colorful.Color {
	hexColors := []string{
		t.Black, t.Red, t.Green, t.Yellow,
		t.Blue, t.Magenta, t.Cyan, t.White,
		t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow,
		t.BrightBlue, t.BrightMagenta, t.BrightCyan, t.BrightWhite,
		t.Foreground, t.Background,
	}

	palette := make([]colorful.Color, 0, len(hexColors))
	for _, hex := range hexColors {
		if c, err := colorful.Hex(hex); err == nil {
			palette = append(palette, c)
		}
	}
	return palette
}

// generateShade adjusts the brightness of a hex color.
// factor < 1.0 darkens, factor > 1.0 brightens. Invalid input is returned as is.
func generateShade(hexColor string, factor float64) string {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return hexColor
	}
	return colorful.Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}.Clamped().Hex()
}

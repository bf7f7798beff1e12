package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/opentype"
	"gopkg.in/yaml.v3"

	"asciicreator/ascii"
)

// Config mirrors the YAML config file. Zero values mean "not set" so that
// command line flags and defaults can fill them in.
type Config struct {
	FontSize     float64            `yaml:"font_size"`
	Density      float64            `yaml:"density"`
	Columns      int                `yaml:"columns"`
	Reversed     bool               `yaml:"reversed"`
	GrayScale    bool               `yaml:"grayscale"`
	Background   string             `yaml:"background"` // hex, or "theme"
	Interpolator string             `yaml:"interpolator"`
	Glyphs       map[string]float32 `yaml:"glyphs"`
	Font         string             `yaml:"font"`
	Theme        string             `yaml:"theme"`
	ThemeFile    string             `yaml:"theme_file"`
	Filters      FilterConfig       `yaml:"filters"`
}

// FilterConfig holds the preprocessing settings. Zero disables a filter.
type FilterConfig struct {
	Contrast      float32 `yaml:"contrast"`
	Gamma         float32 `yaml:"gamma"`
	SharpenSigma  float32 `yaml:"sharpen_sigma"`
	SharpenAmount float32 `yaml:"sharpen_amount"`
}

// LoadConfig reads a YAML config file. An empty path yields an empty config.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// ConverterOptions turns the config into converter options.
func (c *Config) ConverterOptions() ([]ascii.Option, error) {
	var opts []ascii.Option

	if c.FontSize != 0 {
		opts = append(opts, ascii.WithFontSize(c.FontSize))
	}
	if c.Density != 0 {
		opts = append(opts, ascii.WithDensity(c.Density))
	}
	if c.Columns != 0 {
		opts = append(opts, ascii.WithColumns(c.Columns))
	}
	opts = append(opts,
		ascii.WithReversedLuminance(c.Reversed),
		ascii.WithGrayScale(c.GrayScale),
	)

	if c.Background != "" {
		bg, err := ParseBackground(c.Background, CurrentTheme)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ascii.WithBackground(bg))
	}

	interp, err := ascii.InterpolatorByName(c.Interpolator)
	if err != nil {
		return nil, err
	}
	opts = append(opts, ascii.WithInterpolator(interp))

	if len(c.Glyphs) > 0 {
		table, err := ascii.NewGlyphTable(c.Glyphs)
		if err != nil {
			return nil, fmt.Errorf("failed to build glyph table: %w", err)
		}
		opts = append(opts, ascii.WithGlyphTable(table))
	}

	if c.Font != "" {
		f, err := loadFont(c.Font)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ascii.WithFont(f))
	}

	if filter := c.Filters.Chain(); filter != nil {
		opts = append(opts, ascii.WithFilter(filter))
	}

	return opts, nil
}

// Chain builds the configured filters in a fixed order: sharpen, gamma,
// contrast. It returns nil when none is enabled.
func (f FilterConfig) Chain() ascii.Filter {
	var filters []ascii.Filter
	if f.SharpenAmount != 0 {
		sigma := f.SharpenSigma
		if sigma == 0 {
			sigma = 1
		}
		filters = append(filters, &ascii.SharpnessFilter{Sigma: sigma, Amount: f.SharpenAmount})
	}
	if f.Gamma != 0 {
		filters = append(filters, &ascii.GammaFilter{Gamma: f.Gamma})
	}
	if f.Contrast != 0 {
		filters = append(filters, &ascii.ContrastFilter{Percentage: f.Contrast})
	}
	if len(filters) == 0 {
		return nil
	}
	return &ascii.ChainFilter{Filters: filters}
}

// ParseBackground parses a "#rrggbb" or "#rrggbbaa" colour. "theme" selects
// the theme background, "none" and "transparent" select no fill.
func ParseBackground(value string, theme Theme) (color.Color, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "transparent":
		return color.Transparent, nil
	case "theme":
		value = theme.Background
	}

	hex := strings.TrimSpace(value)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	alpha := uint8(0xff)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid background %q: %w", value, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid background %q: %w", value, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func loadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return ascii.ParseFont(data)
}

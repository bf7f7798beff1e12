package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLTheme is a Gogh-style terminal scheme file with 16 ANSI colors
type YAMLTheme struct {
	Name       string `yaml:"name"`
	Variant    string `yaml:"variant"` // dark or light
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`

	Color01 string `yaml:"color_01"` // Black
	Color02 string `yaml:"color_02"` // Red
	Color03 string `yaml:"color_03"` // Green
	Color04 string `yaml:"color_04"` // Yellow
	Color05 string `yaml:"color_05"` // Blue
	Color06 string `yaml:"color_06"` // Magenta
	Color07 string `yaml:"color_07"` // Cyan
	Color08 string `yaml:"color_08"` // White
	Color09 string `yaml:"color_09"` // Bright Black
	Color10 string `yaml:"color_10"` // Bright Red
	Color11 string `yaml:"color_11"` // Bright Green
	Color12 string `yaml:"color_12"` // Bright Yellow
	Color13 string `yaml:"color_13"` // Bright Blue
	Color14 string `yaml:"color_14"` // Bright Magenta
	Color15 string `yaml:"color_15"` // Bright Cyan
	Color16 string `yaml:"color_16"` // Bright White
}

// ConvertToTheme maps the scheme onto Theme
func (yt *YAMLTheme) ConvertToTheme() Theme {
	return Theme{
		Name:       yt.Name,
		Background: yt.Background,
		Foreground: yt.Foreground,
		Subtle:     generateShade(yt.Background, 1.3),

		Black:   yt.Color01,
		Red:     yt.Color02,
		Green:   yt.Color03,
		Yellow:  yt.Color04,
		Blue:    yt.Color05,
		Magenta: yt.Color06,
		Cyan:    yt.Color07,
		White:   yt.Color08,

		BrightBlack:   yt.Color09,
		BrightRed:     yt.Color10,
		BrightGreen:   yt.Color11,
		BrightYellow:  yt.Color12,
		BrightBlue:    yt.Color13,
		BrightMagenta: yt.Color14,
		BrightCyan:    yt.Color15,
		BrightWhite:   yt.Color16,

		Gray: yt.Color08,
	}
}

// LoadThemeFromYAML loads a single YAML theme file
func LoadThemeFromYAML(filePath string) (*YAMLTheme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var yamlTheme YAMLTheme
	if err := yaml.Unmarshal(data, &yamlTheme); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if strings.TrimSpace(yamlTheme.Name) == "" {
		return nil, fmt.Errorf("theme file %s has no name", filePath)
	}

	return &yamlTheme, nil
}

// RegisterThemeFile adds a YAML theme to the registry and returns its name,
// so it can be selected and cycled like the built-in themes.
func RegisterThemeFile(filePath string) (string, error) {
	yamlTheme, err := LoadThemeFromYAML(filePath)
	if err != nil {
		return "", err
	}

	if len(themes) == 0 {
		loadAllThemes()
	}
	themes[yamlTheme.Name] = yamlTheme.ConvertToTheme()
	buildThemeOrder()

	return yamlTheme.Name, nil
}

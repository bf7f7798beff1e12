package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"asciicreator/ascii"
)

// ErrNoInput is returned when neither an image path nor --github is given
var ErrNoInput = errors.New("missing input image argument (or --github LOGIN)")

// Options are the command line flags. Non-zero values override the config file.
type Options struct {
	Config       string  `long:"config" env:"ASCIICREATOR_CONFIG" description:"YAML config file"`
	FontSize     float64 `short:"f" long:"font-size" description:"Glyph size in sp (default 18)"`
	Density      float64 `short:"d" long:"density" description:"Pixels per sp (default 1)"`
	Columns      int     `short:"c" long:"columns" description:"Fixed column count instead of width / cell size"`
	Reversed     bool    `short:"r" long:"reversed" description:"Map bright pixels to dense glyphs"`
	GrayScale    bool    `short:"g" long:"grayscale" description:"Draw glyphs in gray with alpha following luminance"`
	Background   string  `short:"b" long:"background" description:"Image background as hex, \"theme\" or \"none\""`
	Interpolator string  `long:"interpolator" description:"catmullrom, bilinear, approxbilinear or nearest"`
	Font         string  `long:"font" description:"TTF/OTF font for image output"`
	Theme        string  `long:"theme" env:"ASCIICREATOR_THEME" description:"Gogh theme name"`
	ThemeFile    string  `long:"theme-file" description:"Gogh-style YAML theme to register and use"`
	Contrast     float32 `long:"contrast" description:"Contrast adjustment in percent, -100..100"`
	Gamma        float32 `long:"gamma" description:"Gamma correction, 1 = none"`
	Sharpen      float32 `long:"sharpen" description:"Unsharp mask amount"`

	GitHub       string `long:"github" description:"Use a GitHub user's avatar as the source (@me for yourself)"`
	Out          string `short:"o" long:"out" description:"Write text output to a file instead of stdout"`
	Image        string `short:"i" long:"image" description:"Render the glyphs to an image file (png, jpg, gif, bmp, tiff)"`
	ANSI         bool   `long:"ansi" description:"Colour every glyph with its cell colour"`
	Palette      bool   `long:"palette" description:"Snap colours to the active theme palette"`
	Color        string `long:"color" default:"auto" choice:"auto" choice:"truecolor" choice:"256" choice:"16" choice:"none" description:"Terminal colour profile"`
	Braille      bool   `long:"braille" description:"Print a dithered braille rendering"`
	BrailleWidth int    `long:"braille-width" default:"80" description:"Braille output width in characters"`
	TUI          bool   `long:"tui" description:"Open the interactive previewer"`
	Verbose      bool   `short:"V" long:"verbose" description:"Log progress to stderr"`
}

func main() {
	opts := &Options{}

	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = "[OPTIONS] IMAGE"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	if err := run(opts, args); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func run(opts *Options, args []string) error {
	closeLog, err := setupLogging(opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return err
	}
	opts.Apply(cfg)

	if cfg.ThemeFile != "" {
		name, err := RegisterThemeFile(cfg.ThemeFile)
		if err != nil {
			return err
		}
		if opts.Theme == "" {
			cfg.Theme = name
		}
	}
	InitTheme(cfg.Theme)
	lipgloss.SetColorProfile(colorProfile(opts.Color))

	convOpts, err := cfg.ConverterOptions()
	if err != nil {
		return err
	}
	conv := ascii.New(convOpts...)

	img, name, err := loadSource(opts, args)
	if err != nil {
		return err
	}
	log.Printf("source %s: %dx%d", name, img.Bounds().Dx(), img.Bounds().Dy())

	var palette []colorful.Color
	if opts.Palette {
		palette = CurrentTheme.Palette()
	}

	switch {
	case opts.TUI:
		p := tea.NewProgram(NewModel(img, name, conv, opts.ANSI), tea.WithAltScreen())
		_, err := p.Run()
		return err

	case opts.Braille:
		r := &BrailleRenderer{
			Filter:  DefaultBrailleFilter(),
			Palette: palette,
			Color:   opts.ANSI,
		}
		art, err := r.Render(ascii.Resize(img, opts.BrailleWidth*2))
		if err != nil {
			return err
		}
		return writeText(opts.Out, art)

	case opts.Image != "":
		out, err := conv.Image(img)
		if err != nil {
			return err
		}
		log.Printf("writing %s with %.0f columns", opts.Image, conv.Columns())
		return SaveImage(opts.Image, out)

	case opts.ANSI:
		cells, err := conv.Cells(img)
		if err != nil {
			return err
		}
		return writeText(opts.Out, RenderANSI(cells, palette))

	default:
		art, err := conv.Text(img)
		if err != nil {
			return err
		}
		return writeText(opts.Out, art)
	}
}

// Apply copies every flag that was set onto cfg
func (o *Options) Apply(cfg *Config) {
	if o.FontSize != 0 {
		cfg.FontSize = o.FontSize
	}
	if o.Density != 0 {
		cfg.Density = o.Density
	}
	if o.Columns != 0 {
		cfg.Columns = o.Columns
	}
	cfg.Reversed = cfg.Reversed || o.Reversed
	cfg.GrayScale = cfg.GrayScale || o.GrayScale
	if o.Background != "" {
		cfg.Background = o.Background
	}
	if o.Interpolator != "" {
		cfg.Interpolator = o.Interpolator
	}
	if o.Font != "" {
		cfg.Font = o.Font
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if o.ThemeFile != "" {
		cfg.ThemeFile = o.ThemeFile
	}
	if o.Contrast != 0 {
		cfg.Filters.Contrast = o.Contrast
	}
	if o.Gamma != 0 {
		cfg.Filters.Gamma = o.Gamma
	}
	if o.Sharpen != 0 {
		cfg.Filters.SharpenAmount = o.Sharpen
	}
}

func loadSource(opts *Options, args []string) (image.Image, string, error) {
	if opts.GitHub != "" {
		client, err := NewGitHubClient()
		if err != nil {
			return nil, "", err
		}
		img, err := client.FetchAvatarImage(opts.GitHub)
		if err != nil {
			return nil, "", err
		}
		return img, strings.TrimPrefix(opts.GitHub, "@") + ".avatar", nil
	}

	if len(args) < 1 {
		return nil, "", ErrNoInput
	}
	img, err := LoadImage(args[0])
	if err != nil {
		return nil, "", err
	}
	return img, args[0], nil
}

// setupLogging sends the log package to ASCIICREATOR_DEBUG when set, to
// stderr in verbose mode, and nowhere otherwise so the art stays clean.
func setupLogging(verbose bool) (func(), error) {
	if path := os.Getenv("ASCIICREATOR_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "asciicreator")
		if err != nil {
			return nil, fmt.Errorf("failed to open debug log: %w", err)
		}
		return func() { f.Close() }, nil
	}

	log.SetPrefix("asciicreator ")
	if verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func colorProfile(name string) termenv.Profile {
	switch name {
	case "truecolor":
		return termenv.TrueColor
	case "256":
		return termenv.ANSI256
	case "16":
		return termenv.ANSI
	case "none":
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

func writeText(path, text string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

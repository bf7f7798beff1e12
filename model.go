package main

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"asciicreator/ascii"
)

// Font size stepper bounds, in sp
const (
	minFontSize  = 10
	maxFontSize  = 60
	fontSizeStep = 2
)

// Model is the interactive previewer following the Elm architecture
type Model struct {
	source     image.Image
	sourceName string
	conv       *ascii.Converter
	colored    bool

	art        string
	status     string
	converting bool
	err        error

	banner   string
	viewport viewport.Model
	spinner  spinner.Model
	ready    bool
	width    int
	height   int
}

// Messages for async conversion
type asciiMsg struct {
	art string
}
type savedMsg string
type errMsg error

// NewModel creates a previewer for img. The font size is clamped to the
// stepper range.
func NewModel(img image.Image, name string, conv *ascii.Converter, colored bool) Model {
	conv.SetFontSize(clampFontSize(conv.FontSize()))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	banner, err := RenderBanner("asciicreator")
	if err != nil {
		log.Printf("banner: %v", err)
		banner = ""
	}

	return Model{
		source:     img,
		sourceName: name,
		conv:       conv,
		colored:    colored,
		banner:     banner,
		spinner:    s,
		converting: true,
	}
}

func clampFontSize(sp float64) float64 {
	return min(max(sp, minFontSize), maxFontSize)
}

// Init converts the source once with the initial settings
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, convertCmd(m.conv, m.source, m.colored))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The converter must not change while a conversion is running
		if m.converting && msg.String() != "q" && msg.String() != "ctrl+c" {
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "+", "=", "right":
			m.setFontSize(m.conv.FontSize() + fontSizeStep)
			return m, nil
		case "-", "_", "left":
			m.setFontSize(m.conv.FontSize() - fontSizeStep)
			return m, nil
		case "g":
			m.conv.SetGrayScale(!m.conv.GrayScale())
			return m, nil
		case "v":
			m.conv.SetReversedLuminance(!m.conv.ReversedLuminance())
			return m, nil
		case "c":
			m.colored = !m.colored
			return m, nil
		case "t":
			m.status = "theme: " + NextTheme()
			m.spinner.Style = loadingStyle
			return m, nil
		case "enter":
			m.converting = true
			m.err = nil
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, convertCmd(m.conv, m.source, m.colored))
		case "s":
			m.converting = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, saveCmd(m.conv, m.source, outputName(m.sourceName)))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := max(m.height-lipgloss.Height(m.renderHeader())-1, 3)
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.SetContent(m.art)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

	case asciiMsg:
		m.converting = false
		m.art = msg.art
		m.viewport.SetContent(m.art)
		m.viewport.GotoTop()
		return m, nil

	case savedMsg:
		m.converting = false
		m.status = "saved " + string(msg)
		return m, nil

	case errMsg:
		m.converting = false
		m.err = msg
		return m, nil

	case spinner.TickMsg:
		if !m.converting {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setFontSize moves the stepper and forgets the cached column count so the
// next conversion derives it from the new cell size.
func (m *Model) setFontSize(sp float64) {
	m.conv.SetFontSize(clampFontSize(sp))
	m.conv.Reset()
}

// View renders the TUI
func (m Model) View() string {
	sections := []string{m.renderHeader()}

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.converting && m.art == "":
		sections = append(sections, loadingStyle.Render(m.spinner.View()+" Converting..."))
	case m.ready:
		sections = append(sections, m.viewport.View())
	default:
		sections = append(sections, m.art)
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	var lines []string
	if m.banner != "" {
		lines = append(lines, accentStyle.Render(m.banner))
	} else {
		lines = append(lines, titleStyle.Render("asciicreator"))
	}

	settings := []string{
		labelStyle.Render("Font: ") + baseStyle.Render(fmt.Sprintf("%.0f", m.conv.FontSize())),
		toggleStyle(m.conv.GrayScale()).Render("gray"),
		toggleStyle(m.conv.ReversedLuminance()).Render("reversed"),
		toggleStyle(m.colored).Render("color"),
		labelStyle.Render(m.sourceName),
	}
	if m.converting {
		settings = append(settings, m.spinner.View())
	}
	if m.status != "" {
		settings = append(settings, baseStyle.Render(m.status))
	}
	lines = append(lines, strings.Join(settings, "  "))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderStatusBar() string {
	help := "q: quit | enter: convert | +/-: font | g: gray | v: reverse | c: color | t: theme | s: save"
	style := statusBarStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(help)
}

// outputName derives the saved image path from the source name
func outputName(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "image"
	}
	return base + ".ascii.png"
}

// Async command functions

func convertCmd(conv *ascii.Converter, img image.Image, colored bool) tea.Cmd {
	return func() tea.Msg {
		if colored {
			cells, err := conv.Cells(img)
			if err != nil {
				return errMsg(err)
			}
			return asciiMsg{art: RenderANSI(cells, nil)}
		}

		art, err := conv.TextAsync(img).Wait()
		if err != nil {
			return errMsg(err)
		}
		return asciiMsg{art: art}
	}
}

func saveCmd(conv *ascii.Converter, img image.Image, path string) tea.Cmd {
	return func() tea.Msg {
		out, err := conv.ImageAsync(img).Wait()
		if err != nil {
			return errMsg(err)
		}
		if err := SaveImage(path, out); err != nil {
			return errMsg(err)
		}
		return savedMsg(path)
	}
}

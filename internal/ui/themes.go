package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme pairs raw ANSI codes, used for progress lines and tables written
// straight to the terminal, with the lipgloss colors of the result styles.
type Theme struct {
	Name string

	Primary   string // operands, algorithm names
	Secondary string
	Success   string // prime verdicts, saved files
	Warning   string // timings, interruptions
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string

	// Accent, Good, Bad, Caution and Muted color the lipgloss styles. Empty
	// colors leave text unstyled.
	Accent, Good, Bad, Caution, Muted lipgloss.Color
}

// fg returns the escape code selecting xterm-256 color n.
func fg(n int) string { return fmt.Sprintf("\033[38;5;%dm", n) }

const (
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
	ansiReset     = "\033[0m"
)

var (
	// DarkTheme is the default, with bright colors for dark backgrounds.
	DarkTheme = Theme{
		Name: "dark", Primary: fg(39), Secondary: fg(245), Success: fg(82),
		Warning: fg(220), Error: fg(196), Info: fg(141),
		Bold: ansiBold, Underline: ansiUnderline, Reset: ansiReset,
		Accent: "#4488FF", Good: "#9ECE6A", Bad: "#FF4444", Caution: "#FFB347", Muted: "#666666",
	}

	// LightTheme uses darker shades that stay readable on white.
	LightTheme = Theme{
		Name: "light", Primary: fg(27), Secondary: fg(240), Success: fg(28),
		Warning: fg(130), Error: fg(124), Info: fg(54),
		Bold: ansiBold, Underline: ansiUnderline, Reset: ansiReset,
		Accent: "#005FAF", Good: "#008700", Bad: "#AF0000", Caution: "#AF5F00", Muted: "#585858",
	}

	OrangeTheme = Theme{
		Name: "orange", Primary: fg(208), Secondary: fg(245), Success: fg(82),
		Warning: fg(214), Error: fg(196), Info: fg(69),
		Bold: ansiBold, Underline: ansiUnderline, Reset: ansiReset,
		Accent: "#FF8C00", Good: "#9ECE6A", Bad: "#FF4444", Caution: "#FFB347", Muted: "#666666",
	}

	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		OrangeTheme.Name:  OrangeTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	themeMutex   sync.RWMutex
	currentTheme = DarkTheme
)

// Styles are the lipgloss styles of verdicts and result summaries. Unlike
// the raw codes, lipgloss drops colors the output cannot show.
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Prime     lipgloss.Style
	Composite lipgloss.Style
	Warning   lipgloss.Style
	Dim       lipgloss.Style
}

// CurrentStyles builds the styles of the active theme. Titles and verdicts
// stay bold under NoColorTheme.
func CurrentStyles() Styles {
	th := GetCurrentTheme()
	base := lipgloss.NewStyle()
	st := Styles{
		Title: base.Bold(true), Label: base, Value: base,
		Prime: base.Bold(true), Composite: base.Bold(true), Warning: base, Dim: base,
	}
	if th.Accent == "" {
		return st
	}
	st.Title = st.Title.Foreground(th.Accent).Underline(true)
	st.Label = st.Label.Foreground(th.Muted)
	st.Value = st.Value.Foreground(th.Accent)
	st.Prime = st.Prime.Foreground(th.Good)
	st.Composite = st.Composite.Foreground(th.Bad)
	st.Warning = st.Warning.Foreground(th.Caution)
	st.Dim = st.Dim.Foreground(th.Muted).Faint(true)
	return st
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme installs t. Tests use it to restore the previous theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme selects a theme by name ("dark", "light", "orange" or "none").
// Unknown names select DarkTheme.
func SetTheme(name string) {
	th, ok := themes[name]
	if !ok {
		th = DarkTheme
	}
	SetCurrentTheme(th)
}

// InitTheme selects NoColorTheme when noColor is set or the NO_COLOR
// environment variable exists (https://no-color.org/), and DarkTheme
// otherwise.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Theme state is global, so these tests do not run in parallel.

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	tests := []struct{ name, want string }{
		{"dark", "dark"}, {"light", "light"}, {"orange", "orange"},
		{"none", "none"}, {"solarized", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): current = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitThemeNoColor(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Fatal("--no-color should select the none theme")
	}
	if ColorRed()+ColorGreen()+ColorReset() != "" {
		t.Error("color accessors should be empty without colors")
	}
	if got := CurrentStyles().Prime.Render("prime"); !strings.Contains(got, "prime") {
		t.Errorf("Render = %q", got)
	}
}

func TestInitThemeEnvironment(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success || ColorRed() != DarkTheme.Error || ColorReset() != DarkTheme.Reset {
		t.Error("accessors do not follow DarkTheme")
	}
}

func TestStylesFollowTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	for name, th := range themes {
		SetTheme(name)
		st := CurrentStyles()
		if got, want := st.Prime.GetForeground(), lipgloss.TerminalColor(th.Good); th.Good != "" && got != want {
			t.Errorf("%s: Prime foreground = %v, want %v", name, got, want)
		}
		if !st.Title.GetBold() {
			t.Errorf("%s: titles are not bold", name)
		}
	}
}

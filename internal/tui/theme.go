package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds,
// so every semantic color is a lipgloss.AdaptiveColor pair.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMode      = ac("130", "220") // mode label in the status bar
	colorMuted     = ac("240", "243")
	colorBorder    = ac("250", "243")
	colorAccent    = ac("27", "62") // blue
	colorDone      = ac("28", "40") // green for completed todos
	colorOverdue   = ac("160", "196")
	colorSelected  = ac("#e9e9e9", "#262626")
	colorSurfaceFg = ac("235", "252")
)

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Background(colorSelected)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful
// for non-interactive CLI output but can accidentally disable colors in a
// TUI. Here we only honor NO_COLOR and otherwise follow the terminal.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If COLORTERM/TERM indicate stronger support than probing reports,
	// trust the env. Some terminals under-report via probing.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which makes
// AdaptiveColor pick the wrong variant. Priority:
// 1) TNOTES_THEME=light|dark|auto
// 2) TNOTES_DARKBG=true|false
// 3) COLORFGBG heuristic ("fg;bg", last segment is the background)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("TNOTES_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
		// "auto" and unknown values fall through to the heuristics.
	}

	if v := strings.TrimSpace(os.Getenv("TNOTES_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// Common xterm palette: 0-6 dark, 7-15 light.
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

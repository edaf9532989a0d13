// Package term provides color styles and terminal detection.
//
// Styles are package-level variables because the logger and the dry-run
// listing both use them. [Configure] sets them once during startup; when
// colors are disabled every style renders plain text.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/chapterize/internal/config"
)

// Level and accent styles. Plain when colors are disabled.
var (
	Red    lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Blue   lipgloss.Style
	Cyan   lipgloss.Style
	Dim    lipgloss.Style
)

var enabled bool

func init() {
	Configure(config.ColorNever)
}

// Configure resolves the color mode and rebuilds the styles. Call once during
// startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)

	r := lipgloss.NewRenderer(os.Stdout)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	bold := r.NewStyle().Bold(true)
	Red = bold.Foreground(lipgloss.Color("9"))
	Green = bold.Foreground(lipgloss.Color("10"))
	Yellow = bold.Foreground(lipgloss.Color("11"))
	Blue = bold.Foreground(lipgloss.Color("12"))
	Cyan = bold.Foreground(lipgloss.Color("14"))
	Dim = r.NewStyle().Faint(true)
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "#22c55e"
	ColorError   lipgloss.Color = "#ef4444"
	ColorWarning lipgloss.Color = "#f59e0b"
	ColorInfo    lipgloss.Color = "#06b6d4"
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "#e5e7eb"
	ColorSecondary lipgloss.Color = "#3b82f6"
	ColorMuted     lipgloss.Color = "#6b7280"
)

// Color modes accepted by ConfigureColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConfigureColor sets the global lipgloss color profile for out. NO_COLOR
// in the environment forces plain text in auto mode.
func ConfigureColor(mode string, out *os.File) {
	lipgloss.SetColorProfile(profileFor(mode, out))
}

func profileFor(mode string, out *os.File) termenv.Profile {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" || out == nil || !term.IsTerminal(int(out.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(out).EnvColorProfile()
}

// DisableColors switches to monochrome output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorError) }
func WarningStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }
func InfoStyle() lipgloss.Style    { return lipgloss.NewStyle().Foreground(ColorInfo) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorMuted) }

// TitleStyle is used for section headings.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
}

// PrintSuccess writes a checkmark status line to w.
func PrintSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle().Render(SymbolSuccess), fmt.Sprintf(format, args...))
}

// PrintWarning writes a warning status line to w.
func PrintWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", WarningStyle().Render(SymbolWarning), fmt.Sprintf(format, args...))
}

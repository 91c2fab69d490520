package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Text metrics used to size labels, legend entries and tooltips. Labels
// are drawn at FontSize with a monospace-ish advance.
const (
	FontSize   = 11.0
	CharWidth  = 6.6
	LineHeight = 15.0
)

// FormatValue renders a value for axis ticks and tooltips: grouped
// thousands and at most one decimal.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if math.Abs(v) < 0.05 {
		v = 0
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(1)))
}

// FormatPercent renders a fraction in [0, 1] as a percentage.
func FormatPercent(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Percent(f, number.MaxFractionDigits(1)))
}

// textWidth estimates the rendered width of s in pixels.
func textWidth(s string) float64 {
	return float64(lipgloss.Width(s)) * CharWidth
}

// measureLines estimates the box needed for a multi-line label with pad
// pixels of padding on each side.
func measureLines(lines []string, pad float64) (float64, float64) {
	w := 0.0
	for _, l := range lines {
		w = math.Max(w, textWidth(l))
	}
	return w + 2*pad, float64(len(lines))*LineHeight + 2*pad
}

// splitLines splits formatter output, dropping a trailing empty line.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

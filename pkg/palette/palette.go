// Package palette maps color names to the read-only style sets charts draw
// with. Lookups are table driven and permissive: an unknown name resolves to
// the default palette instead of failing.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Name identifies a palette.
type Name int

const (
	Blue Name = iota
	Green
	Purple
	Orange
	Rose
	Teal
	Slate
	Multi
	numPalettes
)

// Default is the palette unknown names resolve to.
const Default = Blue

var names = [numPalettes]string{
	Blue:   "blue",
	Green:  "green",
	Purple: "purple",
	Orange: "orange",
	Rose:   "rose",
	Teal:   "teal",
	Slate:  "slate",
	Multi:  "multi",
}

// aliases accepts the spellings users tend to type.
var aliases = map[string]Name{
	"red":     Rose,
	"pink":    Rose,
	"violet":  Purple,
	"amber":   Orange,
	"cyan":    Teal,
	"gray":    Slate,
	"grey":    Slate,
	"rainbow": Multi,
	"default": Default,
}

// String returns the config name of the palette.
func (n Name) String() string {
	if n < 0 || n >= numPalettes {
		return names[Default]
	}
	return names[n]
}

// Parse resolves a config name, case-insensitively. Unknown names fall back
// to Default.
func Parse(s string) Name {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Name(i)
		}
	}
	if n, ok := aliases[s]; ok {
		return n
	}
	return Default
}

// Names lists every palette in declaration order.
func Names() []Name {
	out := make([]Name, numPalettes)
	for i := range out {
		out[i] = Name(i)
	}
	return out
}

// StyleSet is everything a chart needs to color itself. Colors are hex
// strings usable both as SVG paint and as lipgloss colors.
type StyleSet struct {
	Name   Name
	Series []string
	Shades Shades

	Grid        string
	Axis        string
	Text        string
	Track       string
	TooltipBG   string
	TooltipText string
}

// Lookup returns the style set of n. The returned value shares slices with
// the package table and must not be modified.
func Lookup(n Name) StyleSet {
	if n < 0 || n >= numPalettes {
		n = Default
	}
	return table[n]
}

// Resolve is Lookup(Parse(s)).
func Resolve(s string) StyleSet {
	return Lookup(Parse(s))
}

// Color returns the color of series i, cycling through the series colors.
func (s StyleSet) Color(i int) string {
	if len(s.Series) == 0 {
		return neutral
	}
	if i < 0 {
		i = -i
	}
	return s.Series[i%len(s.Series)]
}

// Colors returns the colors of the first n series.
func (s StyleSet) Colors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s.Color(i)
	}
	return out
}

// TermColor returns the series color as a lipgloss color.
func (s StyleSet) TermColor(i int) lipgloss.Color {
	return lipgloss.Color(s.Color(i))
}

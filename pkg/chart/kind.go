package chart

import (
	"fmt"
	"strings"
)

// Kind selects a chart composition.
type Kind int

const (
	Area Kind = iota
	Bar
	Pie
	Radar
	Radial
	Sparkline
)

var kindNames = []string{"area", "bar", "pie", "radar", "radial", "sparkline"}

// String returns the command-line name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "area"
	}
	return kindNames[k]
}

// Kinds lists every chart kind.
func Kinds() []Kind {
	return []Kind{Area, Bar, Pie, Radar, Radial, Sparkline}
}

// ParseKind resolves a kind name. Unlike variants, kinds are chosen
// explicitly by the caller, so an unknown name is an error.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	if s == "gauge" {
		return Radial, nil
	}
	return Area, fmt.Errorf("unknown chart kind %q (want one of %s)", s, strings.Join(kindNames, ", "))
}

// Variant is a kind-specific layout switch.
type Variant string

const (
	VariantDefault Variant = "default"

	// Area and bar.
	VariantStacked Variant = "stacked"
	// Bar.
	VariantGrouped    Variant = "grouped"
	VariantHorizontal Variant = "horizontal"
	// Pie.
	VariantDonut    Variant = "donut"
	VariantRose     Variant = "rose"
	VariantExploded Variant = "exploded"
	VariantSemi     Variant = "semi"
	// Radar grid shape.
	VariantPolygon Variant = "polygon"
	VariantCircle  Variant = "circle"
	// Radial.
	VariantMulti Variant = "multi"
	VariantGauge Variant = "gauge"
	// Sparkline.
	VariantLine   Variant = "line"
	VariantCurved Variant = "curved"
	VariantBars   Variant = "bar"
	VariantDots   Variant = "dots"
)

var kindVariants = map[Kind][]Variant{
	Area:      {VariantDefault, VariantStacked},
	Bar:       {VariantGrouped, VariantStacked, VariantHorizontal},
	Pie:       {VariantDefault, VariantDonut, VariantRose, VariantExploded, VariantSemi},
	Radar:     {VariantPolygon, VariantCircle},
	Radial:    {VariantDefault, VariantMulti, VariantGauge},
	Sparkline: {VariantLine, VariantCurved, VariantBars, VariantDots},
}

// Variants lists the variants of k; the first is the default.
func Variants(k Kind) []Variant {
	return append([]Variant(nil), kindVariants[k]...)
}

// ParseVariant resolves s against the variants of k, falling back to the
// kind's default for unknown names.
func ParseVariant(k Kind, s string) Variant {
	vs := kindVariants[k]
	if len(vs) == 0 {
		return VariantDefault
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range vs {
		if string(v) == s {
			return v
		}
	}
	return vs[0]
}

// LegendMode controls whether a legend is drawn.
type LegendMode int

const (
	LegendAuto LegendMode = iota
	LegendOn
	LegendOff
)

// ParseLegendMode accepts on/off/auto and the usual boolean spellings.
func ParseLegendMode(s string) LegendMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "show":
		return LegendOn
	case "off", "false", "no", "hide":
		return LegendOff
	default:
		return LegendAuto
	}
}

// String returns the config name of the mode.
func (m LegendMode) String() string {
	switch m {
	case LegendOn:
		return "on"
	case LegendOff:
		return "off"
	default:
		return "auto"
	}
}

package chart

import (
	"time"

	"github.com/rileyhilliard/chartkit/pkg/anim"
	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// Defaults shared by every kind.
const (
	DefaultWidth       = 400.0
	DefaultHeight      = 240.0
	DefaultStrokeWidth = 2.0
	DefaultBarGap      = 0.2
	DefaultRadarLevels = 5
	DefaultRadialWidth = 10.0
	DefaultRadialMax   = 100.0
	DefaultBarRadius   = 4.0
	HoverScale         = 1.05
	ExplodeOffset      = 8.0
)

// TooltipContext describes the hovered element passed to a
// TooltipFormatter. Percent is only meaningful for pie and radial charts
// and is -1 elsewhere.
type TooltipContext struct {
	Kind    Kind
	Index   int
	Series  string
	Value   float64
	Percent float64
	Label   string
}

// TooltipFormatter overrides the default tooltip body for one hovered item.
// Lines are separated by "\n".
type TooltipFormatter func(item data.Point, ctx TooltipContext) string

// Options is the full configuration of one chart instance. The zero value
// of every field means "use the default"; booleans that default to true are
// expressed through their negation or through Defaults.
type Options struct {
	Kind    Kind
	Variant string
	// Color is a palette name; unknown names use the default palette.
	Color string
	// ID namespaces generated SVG ids when several charts share a page.
	ID string

	Width  float64
	Height float64

	ShowGrid       bool
	ShowDots       bool
	ShowXAxis      bool
	ShowYAxis      bool
	ShowLegend     LegendMode
	LegendPosition scale.Side
	ShowTooltip    bool
	ShowMinMax     bool
	Interactive    bool

	Animate  bool
	Duration time.Duration

	StrokeWidth float64
	DonutWidth  float64
	BarGap      float64
	RadarLevels int
	Curve       path.Style
	Horizontal  bool
	Gradient    bool

	XKey     string
	YKeys    []string
	ValueKey string
	NameKey  string
	MaxKey   string

	// Reference draws a horizontal line at this value on sparklines.
	Reference *float64

	TooltipFormatter TooltipFormatter
	OnToggle         func(series int, active bool)
}

// Defaults returns the default options of k.
func Defaults(k Kind) Options {
	o := Options{
		Kind:           k,
		Variant:        string(ParseVariant(k, "")),
		Color:          "blue",
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		ShowGrid:       true,
		ShowXAxis:      true,
		ShowYAxis:      true,
		ShowLegend:     LegendAuto,
		LegendPosition: scale.SideBottom,
		ShowTooltip:    true,
		Interactive:    true,
		Animate:        true,
		StrokeWidth:    DefaultStrokeWidth,
		BarGap:         DefaultBarGap,
		RadarLevels:    DefaultRadarLevels,
		Curve:          path.Curved,
		XKey:           "name",
		YKeys:          []string{"value"},
		ValueKey:       "value",
		NameKey:        "name",
		MaxKey:         "max",
	}
	switch k {
	case Pie, Radar:
		o.ShowXAxis, o.ShowYAxis = false, false
	case Radial:
		o.ShowXAxis, o.ShowYAxis = false, false
		o.StrokeWidth = DefaultRadialWidth
	case Sparkline:
		o.ShowXAxis, o.ShowYAxis, o.ShowGrid = false, false, false
		o.ShowLegend = LegendOff
		o.ShowMinMax = true
		o.Width, o.Height = 160, 40
	}
	return o
}

// normalize fills zero values that would break layout. It never rejects
// input.
func (o Options) normalize() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
		if o.Kind == Radial {
			o.StrokeWidth = DefaultRadialWidth
		}
	}
	if o.BarGap < 0 || o.BarGap >= 1 {
		o.BarGap = DefaultBarGap
	}
	if o.RadarLevels <= 0 {
		o.RadarLevels = DefaultRadarLevels
	}
	if o.XKey == "" {
		o.XKey = "name"
	}
	if o.NameKey == "" {
		o.NameKey = o.XKey
	}
	if o.ValueKey == "" {
		o.ValueKey = "value"
	}
	if o.MaxKey == "" {
		o.MaxKey = "max"
	}
	if len(o.YKeys) == 0 {
		o.YKeys = []string{o.ValueKey}
	}
	return o
}

// variant resolves the configured variant for the options' kind.
func (o Options) variant() Variant {
	return ParseVariant(o.Kind, o.Variant)
}

// series returns the data series named by YKeys, or the value series when
// no usable key is configured.
func (o Options) series() []data.Series {
	if s := data.SeriesFromKeys(o.YKeys); len(s) > 0 {
		return s
	}
	return []data.Series{{Name: o.ValueKey, Key: o.ValueKey}}
}

// AnimationMode returns the driver mode for these options: off when
// animation is disabled, a single delayed step for bars and sparklines and
// a timed reveal otherwise.
func (o Options) AnimationMode() anim.Mode {
	switch {
	case !o.Animate:
		return anim.Off
	case o.Kind == Bar || o.Kind == Sparkline:
		return anim.Step
	default:
		return anim.Timed
	}
}

// legendShown resolves LegendAuto for a chart with n legend entries.
func (o Options) legendShown(n int) bool {
	switch o.ShowLegend {
	case LegendOn:
		return n > 0
	case LegendOff:
		return false
	}
	switch o.Kind {
	case Sparkline:
		return false
	case Pie:
		return n > 0
	case Radial:
		return o.variant() == VariantMulti && n > 1
	default:
		return n > 1
	}
}

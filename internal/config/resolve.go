package config

import (
	"sort"
	"time"

	"dario.cat/mergo"

	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// ChartFor returns the effective ChartConfig of kind: the per-kind
// overrides merged over Defaults. Keys that name the same kind ("radial"
// and "gauge") are merged in name order.
func (c *Config) ChartFor(kind chart.Kind) (ChartConfig, error) {
	merged := c.Defaults
	merged.YKeys = append([]string(nil), c.Defaults.YKeys...)

	names := make([]string, 0, len(c.Charts))
	for name := range c.Charts {
		if k, err := chart.ParseKind(name); err == nil && k == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := mergo.Merge(&merged, c.Charts[name], mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return ChartConfig{}, err
		}
	}
	return merged, nil
}

// Resolve turns the config into chart options for kind, starting from the
// kind's built-in defaults.
func (c *Config) Resolve(kind chart.Kind) (chart.Options, error) {
	cc, err := c.ChartFor(kind)
	if err != nil {
		return chart.Options{}, err
	}
	o := chart.Defaults(kind)
	cc.Apply(&o)
	return o, nil
}

// Apply copies every set field of cc onto o.
func (cc ChartConfig) Apply(o *chart.Options) {
	if cc.Variant != "" {
		o.Variant = string(chart.ParseVariant(o.Kind, cc.Variant))
	}
	if cc.Color != "" {
		o.Color = cc.Color
	}
	if cc.Width > 0 {
		o.Width = cc.Width
	}
	if cc.Height > 0 {
		o.Height = cc.Height
	}

	setBool(&o.ShowGrid, cc.ShowGrid)
	setBool(&o.ShowDots, cc.ShowDots)
	setBool(&o.ShowXAxis, cc.ShowXAxis)
	setBool(&o.ShowYAxis, cc.ShowYAxis)
	setBool(&o.ShowTooltip, cc.ShowTooltip)
	setBool(&o.ShowMinMax, cc.ShowMinMax)
	setBool(&o.Interactive, cc.Interactive)
	setBool(&o.Horizontal, cc.Horizontal)
	setBool(&o.Gradient, cc.Gradient)
	setBool(&o.Animate, cc.Animate)

	if cc.Legend != "" {
		o.ShowLegend = chart.ParseLegendMode(cc.Legend)
	}
	if cc.LegendPosition != "" {
		o.LegendPosition = scale.ParseSide(cc.LegendPosition)
	}
	if d, err := time.ParseDuration(cc.Duration); err == nil && d > 0 {
		o.Duration = d
	}

	if cc.StrokeWidth > 0 {
		o.StrokeWidth = cc.StrokeWidth
	}
	if cc.DonutWidth > 0 {
		o.DonutWidth = cc.DonutWidth
	}
	if cc.BarGap != nil {
		o.BarGap = *cc.BarGap
	}
	if cc.RadarLevels > 0 {
		o.RadarLevels = cc.RadarLevels
	}
	if cc.Curve != "" {
		o.Curve = path.ParseStyle(cc.Curve)
	}

	if cc.XKey != "" {
		o.XKey = cc.XKey
	}
	if len(cc.YKeys) > 0 {
		o.YKeys = append([]string(nil), cc.YKeys...)
	}
	if cc.ValueKey != "" {
		o.ValueKey = cc.ValueKey
	}
	if cc.NameKey != "" {
		o.NameKey = cc.NameKey
	}
	if cc.MaxKey != "" {
		o.MaxKey = cc.MaxKey
	}
	if cc.Reference != nil {
		ref := *cc.Reference
		o.Reference = &ref
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .chartkit.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version" validate:"gte=0"`

	// Defaults apply to every chart kind.
	Defaults ChartConfig `yaml:"defaults" mapstructure:"defaults"`

	// Charts holds per-kind overrides keyed by kind name ("area", "bar", ...).
	// They are merged over Defaults.
	Charts map[string]ChartConfig `yaml:"charts,omitempty" mapstructure:"charts" validate:"dive"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// ChartConfig is the file form of chart options. Booleans are pointers so
// that an unset key keeps the per-kind default instead of forcing false.
type ChartConfig struct {
	Variant string `yaml:"variant,omitempty" mapstructure:"variant"`
	// Color is a palette name. Unknown names fall back to the default
	// palette rather than failing.
	Color string `yaml:"color,omitempty" mapstructure:"color"`

	Width  float64 `yaml:"width,omitempty" mapstructure:"width" validate:"omitempty,min=16,max=4096"`
	Height float64 `yaml:"height,omitempty" mapstructure:"height" validate:"omitempty,min=16,max=4096"`

	ShowGrid    *bool `yaml:"grid,omitempty" mapstructure:"grid"`
	ShowDots    *bool `yaml:"dots,omitempty" mapstructure:"dots"`
	ShowXAxis   *bool `yaml:"x_axis,omitempty" mapstructure:"x_axis"`
	ShowYAxis   *bool `yaml:"y_axis,omitempty" mapstructure:"y_axis"`
	ShowTooltip *bool `yaml:"tooltip,omitempty" mapstructure:"tooltip"`
	ShowMinMax  *bool `yaml:"min_max,omitempty" mapstructure:"min_max"`
	Interactive *bool `yaml:"interactive,omitempty" mapstructure:"interactive"`
	Horizontal  *bool `yaml:"horizontal,omitempty" mapstructure:"horizontal"`
	Gradient    *bool `yaml:"gradient,omitempty" mapstructure:"gradient"`

	// Legend is "auto", "on" or "off".
	Legend         string `yaml:"legend,omitempty" mapstructure:"legend" validate:"omitempty,oneof=auto on off"`
	LegendPosition string `yaml:"legend_position,omitempty" mapstructure:"legend_position" validate:"omitempty,oneof=top bottom left right"`

	Animate *bool `yaml:"animate,omitempty" mapstructure:"animate"`
	// Duration of the timed entrance animation, e.g. "800ms".
	Duration string `yaml:"duration,omitempty" mapstructure:"duration" validate:"omitempty,duration"`

	StrokeWidth float64  `yaml:"stroke_width,omitempty" mapstructure:"stroke_width" validate:"omitempty,gt=0,max=64"`
	DonutWidth  float64  `yaml:"donut_width,omitempty" mapstructure:"donut_width" validate:"omitempty,gte=0"`
	BarGap      *float64 `yaml:"bar_gap,omitempty" mapstructure:"bar_gap" validate:"omitempty,min=0,max=0.9"`
	RadarLevels int      `yaml:"radar_levels,omitempty" mapstructure:"radar_levels" validate:"omitempty,min=1,max=20"`
	Curve       string   `yaml:"curve,omitempty" mapstructure:"curve" validate:"omitempty,oneof=curved monotone straight linear line stepped step"`

	XKey     string   `yaml:"x_key,omitempty" mapstructure:"x_key"`
	YKeys    []string `yaml:"y_keys,omitempty" mapstructure:"y_keys"`
	ValueKey string   `yaml:"value_key,omitempty" mapstructure:"value_key"`
	NameKey  string   `yaml:"name_key,omitempty" mapstructure:"name_key"`
	MaxKey   string   `yaml:"max_key,omitempty" mapstructure:"max_key"`

	Reference *float64 `yaml:"reference,omitempty" mapstructure:"reference"`
}

// OutputConfig controls where rendered files go and terminal output.
type OutputConfig struct {
	// Dir is where `chartkit render` writes files when --out names no
	// directory. Supports ~ and ${HOME}, ${USER}, ${PROJECT}, ${DATE}.
	Dir string `yaml:"dir,omitempty" mapstructure:"dir"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color" validate:"omitempty,oneof=auto always never"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Defaults: ChartConfig{
			Color: "blue",
		},
		Charts: make(map[string]ChartConfig),
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Bool returns a pointer to b, for building ChartConfig literals.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for building ChartConfig literals.
func Float(f float64) *float64 { return &f }

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/chartkit/internal/config"
	"github.com/rileyhilliard/chartkit/internal/dataset"
	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/util"
	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/data"
)

// ChartFlags holds the chart option flags shared by render and preview.
// Zero values leave the config file's setting alone.
type ChartFlags struct {
	Variant  string
	Color    string
	Width    float64
	Height   float64
	Curve    string
	Legend   string
	XKey     string
	YKeys    []string
	ValueKey string
	NameKey  string
	MaxKey   string
}

// AddChartFlags registers the chart option flags on a command.
func AddChartFlags(cmd *cobra.Command, f *ChartFlags) {
	cmd.Flags().StringVar(&f.Variant, "variant", "", "layout variant (see 'chartkit kinds')")
	cmd.Flags().StringVar(&f.Color, "color", "", "palette name (see 'chartkit palettes')")
	cmd.Flags().Float64Var(&f.Width, "width", 0, "drawing width in pixels")
	cmd.Flags().Float64Var(&f.Height, "height", 0, "drawing height in pixels")
	cmd.Flags().StringVar(&f.Curve, "curve", "", "line interpolation: curved, straight or stepped")
	cmd.Flags().StringVar(&f.Legend, "legend", "", "legend: auto, on or off")
	cmd.Flags().StringVar(&f.XKey, "x-key", "", "record key of the category labels")
	cmd.Flags().StringSliceVar(&f.YKeys, "y-keys", nil, "record keys of the series (comma-separated)")
	cmd.Flags().StringVar(&f.ValueKey, "value-key", "", "record key of pie, radial and sparkline values")
	cmd.Flags().StringVar(&f.NameKey, "name-key", "", "record key of pie and radial names")
	cmd.Flags().StringVar(&f.MaxKey, "max-key", "", "record key of radial maximums")

	_ = cmd.RegisterFlagCompletionFunc("color", completePalettes)
}

// Overlay copies every set flag onto cc.
func (f ChartFlags) Overlay(cc *config.ChartConfig) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cc.Variant, f.Variant)
	set(&cc.Color, f.Color)
	set(&cc.Curve, f.Curve)
	set(&cc.Legend, f.Legend)
	set(&cc.XKey, f.XKey)
	set(&cc.ValueKey, f.ValueKey)
	set(&cc.NameKey, f.NameKey)
	set(&cc.MaxKey, f.MaxKey)
	if f.Width > 0 {
		cc.Width = f.Width
	}
	if f.Height > 0 {
		cc.Height = f.Height
	}
	if len(f.YKeys) > 0 {
		cc.YKeys = append([]string(nil), f.YKeys...)
	}
}

// DataFlags select the input data.
type DataFlags struct {
	Path   string
	Format string
	Sheet  string
	Key    string
}

// AddDataFlags registers --data, --format, --sheet and --key.
func AddDataFlags(cmd *cobra.Command, f *DataFlags) {
	cmd.Flags().StringVarP(&f.Path, "data", "d", "", "data file (.yaml, .json, .csv, .tsv, .xlsx) or - for stdin")
	cmd.Flags().StringVar(&f.Format, "format", "", "data format when the extension is missing or stdin is used")
	cmd.Flags().StringVar(&f.Sheet, "sheet", "", "Excel sheet name (default: first sheet)")
	cmd.Flags().StringVar(&f.Key, "key", "", "top-level key holding the records in YAML/JSON")
}

// Load reads the data file.
func (f DataFlags) Load(log logger.Logger) ([]data.Point, error) {
	if f.Path == "" {
		return nil, errors.New(errors.ErrData,
			"No data file given",
			"Pass --data visits.csv, or --data - --format json to read stdin")
	}
	format, err := dataset.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}
	return dataset.Load(f.Path, dataset.Options{Format: format, Sheet: f.Sheet, Key: f.Key, Logger: log})
}

// chartInputs is everything a chart needs besides presentation state.
type chartInputs struct {
	kind    chart.Kind
	options chart.Options
	items   []data.Point
	cfg     *config.Config
}

// resolveChart loads config and data and layers the chart options.
func resolveChart(kindName, configPath string, cf ChartFlags, df DataFlags, log logger.Logger) (*chartInputs, error) {
	kind, err := chart.ParseKind(kindName)
	if err != nil {
		return nil, unknownKind(kindName, err)
	}

	cfg, path, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		log.Debug("using config %s", path)
	}

	cc, err := cfg.ChartFor(kind)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Failed to merge chart settings", "")
	}
	cf.Overlay(&cc)

	items, err := df.Load(log)
	if err != nil {
		return nil, err
	}

	o := chart.Defaults(kind)
	cc.Apply(&o)
	inferKeys(&o, cc, items)
	log.Debug("%s chart: variant=%s palette=%s keys x=%s y=%v value=%s", kind, o.Variant, o.Color, o.XKey, o.YKeys, o.ValueKey)

	return &chartInputs{kind: kind, options: o, items: items, cfg: cfg}, nil
}

// unknownKind wraps a kind parse error with the closest kind names.
func unknownKind(name string, err error) error {
	hint := util.DidYouMean(util.SuggestSimilar(name, kindNames(), 2))
	if hint == "" {
		hint = "Run 'chartkit kinds' to list them"
	}
	return errors.WrapWithCode(err, errors.ErrConfig,
		fmt.Sprintf("Unknown chart kind '%s'", name), hint)
}

// inferKeys fills data keys left unset by config and flags from the first
// record: the first text column labels the categories and every numeric
// column becomes a series.
func inferKeys(o *chart.Options, cc config.ChartConfig, items []data.Point) {
	if len(items) == 0 {
		return
	}
	first := items[0]

	if cc.XKey == "" && !first.Has(o.XKey) {
		if k := firstTextKey(items); k != "" {
			o.XKey = k
			if cc.NameKey == "" {
				o.NameKey = k
			}
		}
	}
	if cc.NameKey == "" && !first.Has(o.NameKey) && first.Has(o.XKey) {
		o.NameKey = o.XKey
	}

	numeric := data.NumericKeys(items, o.XKey, o.NameKey, o.MaxKey)
	if len(numeric) == 0 {
		return
	}
	if len(cc.YKeys) == 0 && (len(o.YKeys) == 0 || !first.Has(o.YKeys[0])) {
		o.YKeys = numeric
	}
	if cc.ValueKey == "" && !first.Has(o.ValueKey) {
		o.ValueKey = numeric[0]
	}
}

func firstTextKey(items []data.Point) string {
	numeric := make(map[string]bool)
	for _, k := range data.NumericKeys(items) {
		numeric[k] = true
	}
	keys := make([]string, 0, len(items[0]))
	for k := range items[0] {
		if !numeric[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

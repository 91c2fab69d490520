package cli

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/preview"
	"github.com/rileyhilliard/chartkit/pkg/data"
)

// PreviewOptions holds options for the preview command.
type PreviewOptions struct {
	Kind       string
	ConfigPath string
	Chart      ChartFlags
	Data       DataFlags
	Hide       []string
	// Watch reloads the data file when it changes.
	Watch  bool
	Logger logger.Logger
}

// buildPreview resolves the chart and returns the preview model without
// starting it.
func buildPreview(opts PreviewOptions, width, height int) (preview.Model, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	if opts.Watch && (opts.Data.Path == "" || opts.Data.Path == "-") {
		return preview.Model{}, errors.New(errors.ErrPreview,
			"--watch needs a data file",
			"Pass --data with a file path; stdin can't be watched")
	}

	in, err := resolveChart(opts.Kind, opts.ConfigPath, opts.Chart, opts.Data, log)
	if err != nil {
		return preview.Model{}, err
	}

	title := []string{in.kind.String()}
	if in.options.Variant != "" && in.options.Variant != "default" {
		title = append(title, in.options.Variant)
	}
	if opts.Data.Path != "" && opts.Data.Path != "-" && !opts.Watch {
		title = append(title, opts.Data.Path)
	}

	previewOpts := []preview.Option{
		preview.WithSize(width, height),
		preview.WithTitle(strings.Join(title, " · ")),
		preview.WithLogger(log),
	}
	if opts.Watch {
		df := opts.Data
		previewOpts = append(previewOpts, preview.WithWatch(df.Path, func() ([]data.Point, error) {
			return df.Load(log)
		}))
	}

	m := preview.New(in.options, in.items, previewOpts...)
	m.Chart().Hide(opts.Hide...)
	return m, nil
}

// Preview opens the interactive terminal preview.
func Preview(opts PreviewOptions) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New(errors.ErrPreview,
			"Preview needs an interactive terminal",
			"Use 'chartkit render' to write an SVG instead")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = preview.DefaultCols, preview.DefaultRows
	}

	m, err := buildPreview(opts, width, height)
	if err != nil {
		return err
	}
	if opts.Logger != nil {
		opts.Logger.Debug("preview %dx%d", width, height)
	}
	return preview.Run(m)
}

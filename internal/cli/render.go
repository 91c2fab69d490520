package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/ui"
	"github.com/rileyhilliard/chartkit/internal/util"
	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Kind       string
	ConfigPath string
	Chart      ChartFlags
	Data       DataFlags
	// Out is the SVG destination; empty or "-" writes to Stdout. A bare
	// file name goes into the config's output.dir.
	Out string
	// Hide lists series or slice names to leave out.
	Hide []string
	// Hover renders the hover state of a pointer at (HoverX, HoverY).
	Hover          bool
	HoverX, HoverY float64
	// ID namespaces gradient ids when several charts share a page.
	ID string

	Stdout io.Writer
	Stderr io.Writer
	Logger logger.Logger
}

// Render draws a chart from a data file to SVG.
func Render(opts RenderOptions) error {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	in, err := resolveChart(opts.Kind, opts.ConfigPath, opts.Chart, opts.Data, log)
	if err != nil {
		return err
	}
	o := in.options
	o.ID = opts.ID

	started := time.Now()
	c := chart.New(o, in.items)
	c.Hide(opts.Hide...)
	if opts.Hover && !c.PointerMove(opts.HoverX, opts.HoverY) {
		log.Warn("hover point (%g, %g) is outside the plot", opts.HoverX, opts.HoverY)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Failed to render SVG", "")
	}
	log.Debug("rendered %s in %s (%d bytes)", in.kind, time.Since(started).Round(time.Microsecond), buf.Len())

	if opts.Out == "" || opts.Out == "-" {
		_, err := buf.WriteTo(stdout)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to write SVG", "")
		}
		return nil
	}

	dest := opts.Out
	if filepath.Dir(dest) == "." && in.cfg.Output.Dir != "" {
		dest = filepath.Join(in.cfg.Output.Dir, dest)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			fmt.Sprintf("Failed to create output directory '%s'", filepath.Dir(dest)),
			"Check the path, or set output.dir in .chartkit.yaml")
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			fmt.Sprintf("Failed to write '%s'", dest),
			"Check the directory is writable")
	}

	ui.PrintSuccess(stderr, "wrote %s %s", dest, summary(c, in.items))
	return nil
}

// summary is a one-line description of a rendered chart: kind, record
// count and a sparkline of the first visible series.
func summary(c *chart.Chart, items []data.Point) string {
	o := c.Options()
	text := ui.MutedStyle().Render(fmt.Sprintf("(%s, %d %s)", o.Kind, len(items), util.Pluralize(len(items), "record", "records")))

	key := o.ValueKey
	if o.Kind != chart.Pie && o.Kind != chart.Radial {
		key = ""
		for i, e := range c.Legend() {
			if !e.Hidden && i < len(o.YKeys) {
				key = o.YKeys[i]
				break
			}
		}
	}
	if key == "" || len(items) < 2 {
		return text
	}
	values := make([]float64, len(items))
	for i, p := range items {
		values[i] = p.Value(key)
	}
	color := palette.Resolve(o.Color).TermColor(0)
	return text + " " + ui.RenderSparkline(values, 32, color)
}

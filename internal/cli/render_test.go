package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
)

const visitsCSV = `month,desktop,mobile
Jan,186,80
Feb,305,200
Mar,237,120
Apr,73,190
May,209,130
Jun,214,140
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// emptyConfig writes a minimal config so tests never pick up a stray
// .chartkit.yaml from the working tree.
func emptyConfig(t *testing.T) string {
	return writeFile(t, ".chartkit.yaml", "version: 1\n")
}

func renderString(t *testing.T, opts RenderOptions) (string, string, *logger.BufferLogger) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	log := logger.NewBufferLogger()
	opts.Stdout, opts.Stderr, opts.Logger = &stdout, &stderr, log
	if opts.ConfigPath == "" {
		opts.ConfigPath = emptyConfig(t)
	}
	require.NoError(t, Render(opts))
	return stdout.String(), stderr.String(), log
}

func TestRenderEveryKindToStdout(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)

	for _, kind := range []string{"area", "bar", "pie", "radar", "radial", "gauge", "sparkline"} {
		t.Run(kind, func(t *testing.T) {
			out, stderr, _ := renderString(t, RenderOptions{Kind: kind, Data: DataFlags{Path: csv}})

			assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"), "stdout should be an SVG document")
			assert.Contains(t, out, "</svg>")
			assert.Empty(t, stderr, "nothing is reported when writing to stdout")
		})
	}
}

func TestRenderWritesIntoOutputDir(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)
	outDir := filepath.Join(t.TempDir(), "charts")
	cfg := writeFile(t, ".chartkit.yaml", "version: 1\noutput:\n  dir: "+outDir+"\n  color: never\n")

	out, stderr, _ := renderString(t, RenderOptions{
		Kind:       "bar",
		ConfigPath: cfg,
		Data:       DataFlags{Path: csv},
		Out:        "sales.svg",
	})

	assert.Empty(t, out)
	dest := filepath.Join(outDir, "sales.svg")
	content, err := os.ReadFile(dest)
	require.NoError(t, err, "bare names go into output.dir, which is created")
	assert.Contains(t, string(content), "<title>bar chart</title>")
	assert.Contains(t, stderr, dest)
	assert.Contains(t, stderr, "bar, 6 records")
}

func TestRenderExplicitPathIgnoresOutputDir(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)
	cfg := writeFile(t, ".chartkit.yaml", "version: 1\noutput:\n  dir: "+filepath.Join(t.TempDir(), "unused")+"\n")
	dest := filepath.Join(t.TempDir(), "nested", "area.svg")

	renderString(t, RenderOptions{Kind: "area", ConfigPath: cfg, Data: DataFlags{Path: csv}, Out: dest})

	assert.FileExists(t, dest)
}

func TestRenderHide(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)

	shown, _, _ := renderString(t, RenderOptions{Kind: "area", Data: DataFlags{Path: csv}})
	hidden, _, _ := renderString(t, RenderOptions{Kind: "area", Data: DataFlags{Path: csv}, Hide: []string{"mobile"}})

	assert.NotContains(t, shown, "opacity:0.4")
	assert.Contains(t, hidden, "opacity:0.4", "hidden series stay in the legend, dimmed")
}

func TestRenderHover(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)

	t.Run("inside the plot", func(t *testing.T) {
		out, _, log := renderString(t, RenderOptions{
			Kind: "area", Data: DataFlags{Path: csv},
			Hover: true, HoverX: 200, HoverY: 100,
		})
		assert.Contains(t, out, "fill-opacity:0.92", "tooltip box is drawn")
		assert.False(t, log.HasLevel("warn"))
	})

	t.Run("outside the plot", func(t *testing.T) {
		out, _, log := renderString(t, RenderOptions{
			Kind: "area", Data: DataFlags{Path: csv},
			Hover: true, HoverX: -50, HoverY: -50,
		})
		assert.NotContains(t, out, "fill-opacity:0.92")
		assert.True(t, log.HasLevel("warn"))
	})
}

func TestRenderFlagsOverrideConfig(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)
	cfg := writeFile(t, ".chartkit.yaml", "version: 1\ndefaults:\n  width: 300\n  height: 200\n")

	fromConfig, _, _ := renderString(t, RenderOptions{Kind: "bar", ConfigPath: cfg, Data: DataFlags{Path: csv}})
	assert.Contains(t, fromConfig, `width="300" height="200"`)

	fromFlags, _, _ := renderString(t, RenderOptions{
		Kind: "bar", ConfigPath: cfg, Data: DataFlags{Path: csv},
		Chart: ChartFlags{Width: 640},
	})
	assert.Contains(t, fromFlags, `width="640" height="200"`)
}

func TestRenderErrors(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)
	badConfig := writeFile(t, ".chartkit.yaml", "version: 1\ndefaults:\n  width: 5\n")

	tests := []struct {
		name string
		opts RenderOptions
		code string
	}{
		{"unknown kind", RenderOptions{Kind: "donut-hole", Data: DataFlags{Path: csv}}, errors.ErrConfig},
		{"no data", RenderOptions{Kind: "area"}, errors.ErrData},
		{"missing data file", RenderOptions{Kind: "area", Data: DataFlags{Path: "/nonexistent/visits.csv"}}, errors.ErrData},
		{"invalid config", RenderOptions{Kind: "area", ConfigPath: badConfig, Data: DataFlags{Path: csv}}, errors.ErrConfig},
		{"missing config", RenderOptions{Kind: "area", ConfigPath: "/nonexistent/.chartkit.yaml", Data: DataFlags{Path: csv}}, errors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts.ConfigPath == "" {
				opts.ConfigPath = emptyConfig(t)
			}
			opts.Stdout, opts.Stderr, opts.Logger = &bytes.Buffer{}, &bytes.Buffer{}, logger.Noop()

			err := Render(opts)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

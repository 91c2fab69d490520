package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWriteSVG_ReportsWriteErrors(t *testing.T) {
	o := Defaults(Area)
	g := Compute(months(), o, FullState())
	err := WriteSVG(&failingWriter{after: 3}, g, o)
	assert.EqualError(t, err, "disk full")
}

func TestWriteSVG_Document(t *testing.T) {
	o := sized(Area, 300, 150)
	o.Curve = path.Straight
	o.Gradient = true
	g := Compute(months(), o, FullState())

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, g, o))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Contains(t, out, `d="M40 83.64 L170 10.91 L300 47.27"`)
	assert.Contains(t, out, `id="`+g.Gradients[0].ID+`"`)
	assert.Contains(t, out, "fill:url(#"+g.Gradients[0].ID+")")
	assert.Contains(t, out, ">Feb</text>")
}

func TestWriteSVG_EscapesText(t *testing.T) {
	o := sized(Pie, 200, 200)
	o.ShowLegend = LegendOn
	items := []data.Point{{"name": "<b>&co", "value": 1}}
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, Compute(items, o, FullState()), o))
	assert.Contains(t, buf.String(), "&lt;b&gt;&amp;co")
	assert.NotContains(t, buf.String(), "<b>")
}

func TestWriteSVG_EveryKind(t *testing.T) {
	items := []data.Point{
		{"name": "a", "value": 4, "max": 10},
		{"name": "b", "value": 7, "max": 10},
		{"name": "c", "value": 2, "max": 10},
	}
	for _, k := range Kinds() {
		for _, v := range Variants(k) {
			o := Defaults(k)
			o.Variant = string(v)
			st := FullState()
			st.Hover.Active, st.Hover.Index, st.Hover.Slice = true, 1, 1
			var buf bytes.Buffer
			require.NoError(t, WriteSVG(&buf, Compute(items, o, st), o))
			out := buf.String()
			assert.Contains(t, out, "<path", "%s/%s", k, v)
			assert.NotContains(t, out, "NaN", "%s/%s", k, v)
		}
	}
}

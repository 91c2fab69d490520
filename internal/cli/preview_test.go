package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
)

func TestBuildPreview(t *testing.T) {
	csv := writeFile(t, "visits.csv", visitsCSV)

	m, err := buildPreview(PreviewOptions{
		Kind:       "bar",
		ConfigPath: emptyConfig(t),
		Chart:      ChartFlags{Variant: "stacked"},
		Data:       DataFlags{Path: csv},
		Hide:       []string{"mobile"},
		Logger:     logger.Noop(),
	}, 80, 24)
	require.NoError(t, err)

	legend := m.Chart().Legend()
	require.Len(t, legend, 2)
	assert.False(t, legend[0].Hidden)
	assert.True(t, legend[1].Hidden, "--hide applies before the first frame")
	assert.Contains(t, m.View(), "bar · stacked · "+csv)
}

func TestBuildPreviewWatchNeedsFile(t *testing.T) {
	for _, path := range []string{"", "-"} {
		_, err := buildPreview(PreviewOptions{
			Kind:   "area",
			Data:   DataFlags{Path: path},
			Watch:  true,
			Logger: logger.Noop(),
		}, 80, 24)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrPreview))
	}
}

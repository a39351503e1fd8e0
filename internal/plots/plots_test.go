package plots

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

func assertPNG(t *testing.T, path string) (width, height int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err, "valid PNG header")
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)
	return cfg.Width, cfg.Height
}

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer("/out", Config{})

	assert.Equal(t, DefaultConfig(), r.cfg)
	assert.Equal(t, filepath.Join("/out", "plots"), r.Dir())
}

func TestRenderer_Histograms(t *testing.T) {
	tests := []struct {
		name   string
		series []Series
	}{
		{name: "single column", series: []Series{{Name: "age", Values: []float64{25, 30, 45, 28}}}},
		{name: "two rows", series: []Series{
			{Name: "a", Values: []float64{1, 2, 3}},
			{Name: "b", Values: []float64{4, 4, 4}},
			{Name: "c", Values: []float64{-1, 0, 1}},
			{Name: "d", Values: []float64{10}},
		}},
		{name: "column without present values", series: []Series{
			{Name: "empty", Values: nil},
			{Name: "x", Values: []float64{1, 2}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(t.TempDir(), DefaultConfig())

			path, err := r.Histograms(tt.series)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(r.Dir(), HistogramFile), path)
			assertPNG(t, path)
		})
	}
}

func TestRenderer_HistogramsCapsColumns(t *testing.T) {
	r := NewRenderer(t.TempDir(), Config{MaxHistogramColumns: 2, HistogramsPerRow: 3})
	series := []Series{
		{Name: "a", Values: []float64{1, 2}},
		{Name: "b", Values: []float64{1, 2}},
		{Name: "c", Values: []float64{1, 2}},
	}

	path, err := r.Histograms(series)
	require.NoError(t, err)

	width, _ := assertPNG(t, path)
	narrow, err := NewRenderer(t.TempDir(), Config{MaxHistogramColumns: 2}).Histograms(series[:2])
	require.NoError(t, err)
	narrowWidth, _ := assertPNG(t, narrow)
	assert.Equal(t, narrowWidth, width, "third column is not laid out")
}

func TestRenderer_HistogramsSkipped(t *testing.T) {
	r := NewRenderer(t.TempDir(), DefaultConfig())

	path, err := r.Histograms(nil)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NoFileExists(t, filepath.Join(r.Dir(), HistogramFile))
}

func TestRenderer_Heatmap(t *testing.T) {
	r := NewRenderer(t.TempDir(), DefaultConfig())
	m := &domain.CorrelationMatrix{
		Columns: []string{"id", "age", "score"},
		Values: [][]domain.Float{
			{1, 0.25, domain.Float(math.NaN())},
			{0.25, 1, -0.8},
			{domain.Float(math.NaN()), -0.8, 1},
		},
	}

	path, err := r.Heatmap(m)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(r.Dir(), HeatmapFile), path)
	assertPNG(t, path)
}

func TestRenderer_HeatmapSkipped(t *testing.T) {
	r := NewRenderer(t.TempDir(), DefaultConfig())

	for _, m := range []*domain.CorrelationMatrix{nil, {Columns: []string{"a"}, Values: [][]domain.Float{{1}}}} {
		path, err := r.Heatmap(m)
		require.NoError(t, err)
		assert.Empty(t, path)
	}
	assert.NoFileExists(t, filepath.Join(r.Dir(), HeatmapFile))
}

func TestRenderer_MissingnessBar(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.ColumnMissingness
	}{
		{name: "mixed", rows: []domain.ColumnMissingness{
			{Column: "score", MissingCount: 3, MissingPct: 30},
			{Column: "age", MissingCount: 1, MissingPct: 10},
			{Column: "id", MissingCount: 0, MissingPct: 0},
		}},
		{name: "nothing missing", rows: []domain.ColumnMissingness{
			{Column: "name"}, {Column: "city"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(t.TempDir(), DefaultConfig())

			path, err := r.MissingnessBar(tt.rows)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(r.Dir(), MissingnessBarFile), path)
			assertPNG(t, path)
		})
	}
}

func TestFormatCorrelation(t *testing.T) {
	assert.Equal(t, "0.25", formatCorrelation(0.2512))
	assert.Equal(t, "-1.00", formatCorrelation(-1))
	assert.Equal(t, "nan", formatCorrelation(math.NaN()))
}

func TestCorrelationGrid(t *testing.T) {
	g := correlationGrid{m: &domain.CorrelationMatrix{
		Columns: []string{"a", "b"},
		Values:  [][]domain.Float{{1, 0.5}, {0.5, 1}},
	}}

	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0.5, g.Z(1, 1), "top row is the first matrix row")
	assert.Equal(t, 1.0, g.Z(0, 1))
}

// Package plots renders the diagnostic PNG charts of an analysis run.
package plots

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
)

// Output file names inside the plots directory.
const (
	HistogramFile      = "distribution_histogram.png"
	HeatmapFile        = "correlation_heatmap.png"
	MissingnessBarFile = "missingness_bar.png"
)

// Dir is the subdirectory of the report directory plots are written to.
const Dir = "plots"

var (
	histogramFill = color.RGBA{R: 70, G: 130, B: 180, A: 255}  // steelblue
	missingFill   = color.RGBA{R: 231, G: 76, B: 60, A: 255}   // red
	completeFill  = color.RGBA{R: 149, G: 165, B: 166, A: 255} // grey
	nanFill       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// Series is a named numeric column with its present values.
type Series struct {
	Name   string
	Values []float64
}

// Config controls plot rendering.
type Config struct {
	HistogramBins       int
	MaxHistogramColumns int
	HistogramsPerRow    int
}

// DefaultConfig returns the rendering defaults.
func DefaultConfig() Config {
	return Config{
		HistogramBins:       30,
		MaxHistogramColumns: 6,
		HistogramsPerRow:    3,
	}
}

// Renderer writes plots into <outDir>/plots.
type Renderer struct {
	dir string
	cfg Config
}

// NewRenderer creates a renderer for the report directory outDir. Zero config
// fields take their defaults.
func NewRenderer(outDir string, cfg Config) *Renderer {
	def := DefaultConfig()
	if cfg.HistogramBins <= 0 {
		cfg.HistogramBins = def.HistogramBins
	}
	if cfg.MaxHistogramColumns <= 0 {
		cfg.MaxHistogramColumns = def.MaxHistogramColumns
	}
	if cfg.HistogramsPerRow <= 0 {
		cfg.HistogramsPerRow = def.HistogramsPerRow
	}
	return &Renderer{dir: filepath.Join(outDir, Dir), cfg: cfg}
}

// Dir returns the directory plots are written to.
func (r *Renderer) Dir() string {
	return r.dir
}

func (r *Renderer) path(name string) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("create plots directory: %w", err)
	}
	return filepath.Join(r.dir, name), nil
}

package plots

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// correlationGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 of
// the matrix is drawn at the top.
type correlationGrid struct {
	m *domain.CorrelationMatrix
}

func (g correlationGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 {
	n := len(g.m.Columns)
	return float64(g.m.Values[n-1-r][c])
}

func (g correlationGrid) X(c int) float64 { return float64(c) }
func (g correlationGrid) Y(r int) float64 { return float64(r) }

// nameTicks labels integer positions with column names.
type nameTicks []string

func (t nameTicks) Ticks(_, _ float64) []plot.Tick {
	ticks := make([]plot.Tick, len(t))
	for i, name := range t {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	return ticks
}

// Heatmap draws the correlation matrix on a diverging blue-red scale from -1
// to 1 with each cell annotated to two decimals. A nil matrix or one with
// fewer than two columns writes nothing and returns an empty path.
func (r *Renderer) Heatmap(m *domain.CorrelationMatrix) (string, error) {
	if m == nil || len(m.Columns) < 2 {
		return "", nil
	}
	n := len(m.Columns)

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	hm := plotter.NewHeatMap(correlationGrid{m: m}, colors.Palette(255))
	hm.Min = -1
	hm.Max = 1
	hm.NaN = nanFill

	labels, err := plotter.NewLabels(annotations(m))
	if err != nil {
		return "", fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.Add(hm, labels)

	xNames := make(nameTicks, n)
	yNames := make(nameTicks, n)
	for i, name := range m.Columns {
		xNames[i] = name
		yNames[n-1-i] = name
	}
	p.X.Tick.Marker = xNames
	p.Y.Tick.Marker = yNames
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	width := vg.Inch * vg.Length(math.Max(6, float64(n)*0.8))
	height := vg.Inch * vg.Length(math.Max(5, float64(n)*0.7))

	path, err := r.path(HeatmapFile)
	if err != nil {
		return "", err
	}
	if err := p.Save(width, height, path); err != nil {
		return "", fmt.Errorf("save %s: %w", HeatmapFile, err)
	}
	return path, nil
}

func annotations(m *domain.CorrelationMatrix) plotter.XYLabels {
	n := len(m.Columns)
	out := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, n*n),
		Labels: make([]string, 0, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.XYs = append(out.XYs, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			out.Labels = append(out.Labels, formatCorrelation(float64(m.Values[i][j])))
		}
	}
	return out
}

func formatCorrelation(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package plots

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// MissingnessBar draws one bar per column showing its missing percentage, in
// the order given. Columns with missing data are red and complete columns
// grey. The chart is always produced.
func (r *Renderer) MissingnessBar(rows []domain.ColumnMissingness) (string, error) {
	names := make([]string, len(rows))
	missing := make(plotter.Values, len(rows))
	complete := make(plotter.Values, len(rows))
	maxPct := 0.0
	for i, row := range rows {
		names[i] = row.Column
		if row.MissingPct > 0 {
			missing[i] = row.MissingPct
		}
		maxPct = math.Max(maxPct, row.MissingPct)
	}

	p := plot.New()
	p.Title.Text = "Missing Data (%) per Column"
	p.Y.Label.Text = "Missing %"
	p.X.Label.Text = "Column"

	if len(rows) > 0 {
		barWidth := vg.Points(18)
		red, err := plotter.NewBarChart(missing, barWidth)
		if err != nil {
			return "", fmt.Errorf("missingness bars: %w", err)
		}
		red.Color = missingFill
		red.LineStyle.Width = 0

		grey, err := plotter.NewBarChart(complete, barWidth)
		if err != nil {
			return "", fmt.Errorf("missingness bars: %w", err)
		}
		grey.Color = completeFill
		grey.LineStyle.Width = 0

		p.Add(red, grey)
		p.NominalX(names...)
	}

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black
	zero.Width = vg.Points(0.8)
	p.Add(zero)

	p.Y.Min = 0
	p.Y.Max = math.Max(maxPct, 1) * 1.05
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	width := vg.Inch * vg.Length(math.Max(8, float64(len(rows))*0.5))
	height := 5 * vg.Inch

	path, err := r.path(MissingnessBarFile)
	if err != nil {
		return "", err
	}
	if err := p.Save(width, height, path); err != nil {
		return "", fmt.Errorf("save %s: %w", MissingnessBarFile, err)
	}
	return path, nil
}

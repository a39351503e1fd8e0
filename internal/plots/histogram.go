package plots

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const histogramTitle = "Distribution of Numeric Columns"

// Histograms draws one histogram per series, up to MaxHistogramColumns, laid
// out HistogramsPerRow to a row. It returns an empty path and writes nothing
// when series is empty.
func (r *Renderer) Histograms(series []Series) (string, error) {
	if len(series) == 0 {
		return "", nil
	}
	if len(series) > r.cfg.MaxHistogramColumns {
		series = series[:r.cfg.MaxHistogramColumns]
	}

	cols := min(len(series), r.cfg.HistogramsPerRow)
	rows := (len(series) + cols - 1) / cols

	const titleSpace = vg.Length(30)
	width := 5 * vg.Inch * vg.Length(cols)
	height := 4*vg.Inch*vg.Length(rows) + titleSpace

	img := vgimg.New(width, height)
	dc := draw.New(img)

	title := plot.New().Title.TextStyle
	title.XAlign = text.XCenter
	title.YAlign = text.YTop
	dc.FillText(title, vg.Point{X: width / 2, Y: height - 6}, histogramTitle)

	tiles := draw.Tiles{
		Rows:   rows,
		Cols:   cols,
		PadX:   vg.Millimeter * 4,
		PadY:   vg.Millimeter * 4,
		PadTop: titleSpace,
	}

	for i, s := range series {
		p, err := r.histogram(s)
		if err != nil {
			return "", err
		}
		p.Draw(tiles.At(dc, i%cols, i/cols))
	}

	path, err := r.path(HistogramFile)
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", HistogramFile, err)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return "", fmt.Errorf("encode %s: %w", HistogramFile, err)
	}
	return path, f.Close()
}

func (r *Renderer) histogram(s Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Name
	p.Y.Label.Text = "Count"

	if len(s.Values) == 0 {
		return p, nil
	}

	h, err := plotter.NewHist(plotter.Values(s.Values), r.cfg.HistogramBins)
	if err != nil {
		return nil, fmt.Errorf("histogram for %s: %w", s.Name, err)
	}
	h.FillColor = histogramFill
	h.LineStyle.Color = color.White
	p.Add(h)
	return p, nil
}

package dataprocessing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/zttzhu/dataset-insights/internal/missingness"
)

// Describe holds descriptive statistics for one numeric column.
type Describe struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// PresentFloats returns the numeric values of col that are neither null nor
// flagged in mask. A nil mask only drops parse-time nulls.
func PresentFloats(ds *Dataset, mask *missingness.Mask, col int) []float64 {
	raw := ds.Floats(col)
	values := make([]float64, 0, len(raw))
	for row, v := range raw {
		if math.IsNaN(v) || isMasked(ds, mask, row, col) {
			continue
		}
		values = append(values, v)
	}
	return values
}

func isMasked(ds *Dataset, mask *missingness.Mask, row, col int) bool {
	if mask == nil {
		return ds.IsNull(row, col)
	}
	return mask.Missing(row, col)
}

// DescribeValues computes count, mean, sample standard deviation, extrema and
// quartiles of values. Statistics that need more observations than are
// available are NaN.
func DescribeValues(values []float64) Describe {
	d := Describe{Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		d.Mean, d.Std, d.Min, d.P25, d.P50, d.P75, d.Max = nan, nan, nan, nan, nan, nan, nan
		return d
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	} else {
		d.Std = math.NaN()
	}
	d.Min = floats.Min(sorted)
	d.Max = floats.Max(sorted)
	d.P25 = Quantile(sorted, 0.25)
	d.P50 = Quantile(sorted, 0.50)
	d.P75 = Quantile(sorted, 0.75)
	return d
}

// Quantile returns the p-quantile of sorted data, linearly interpolating
// between the closest ranks at position p*(n-1).
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// PairwiseCorrelation returns the Pearson correlation of x and y over the
// rows where both are present. It is NaN with fewer than two complete pairs
// or when either side has zero variance.
func PairwiseCorrelation(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if i >= len(y) || math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	// Rounding can push |r| fractionally past 1.
	return math.Max(-1, math.Min(1, r))
}

// maskedFloats is Floats with masked cells replaced by NaN.
func maskedFloats(ds *Dataset, mask *missingness.Mask, col int) []float64 {
	values := ds.Floats(col)
	for row := range values {
		if isMasked(ds, mask, row, col) {
			values[row] = math.NaN()
		}
	}
	return values
}

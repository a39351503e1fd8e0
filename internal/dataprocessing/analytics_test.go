package dataprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{name: "single value", sorted: []float64{7}, p: 0.25, want: 7},
		{name: "exact rank", sorted: []float64{1, 2, 3, 4, 5}, p: 0.5, want: 3},
		{name: "interpolated", sorted: []float64{1, 2, 3, 4}, p: 0.25, want: 1.75},
		{name: "upper quartile", sorted: []float64{1, 2, 3, 4}, p: 0.75, want: 3.25},
		{name: "minimum", sorted: []float64{1, 2, 3, 4}, p: 0, want: 1},
		{name: "maximum", sorted: []float64{1, 2, 3, 4}, p: 1, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantile(tt.sorted, tt.p), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestDescribeValues(t *testing.T) {
	d := DescribeValues([]float64{40, 22, 25, 28, 30, 33, 35, 45, 29})

	assert.Equal(t, 9, d.Count)
	assert.InDelta(t, 287.0/9.0, d.Mean, 1e-9)
	assert.InDelta(t, 22, d.Min, 1e-12)
	assert.InDelta(t, 28, d.P25, 1e-12)
	assert.InDelta(t, 30, d.P50, 1e-12)
	assert.InDelta(t, 35, d.P75, 1e-12)
	assert.InDelta(t, 45, d.Max, 1e-12)
	assert.InDelta(t, 7.253351715662981, d.Std, 1e-9)
}

func TestDescribeValues_Degenerate(t *testing.T) {
	empty := DescribeValues(nil)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Max))

	single := DescribeValues([]float64{3})
	assert.Equal(t, 1, single.Count)
	assert.Equal(t, 3.0, single.Mean)
	assert.True(t, math.IsNaN(single.Std), "sample std needs two values")
	assert.Equal(t, 3.0, single.P75)
}

func TestDescribeValues_DoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	DescribeValues(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestPairwiseCorrelation(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name    string
		x, y    []float64
		want    float64
		wantNaN bool
	}{
		{name: "perfect positive", x: []float64{1, 2, 3}, y: []float64{2, 4, 6}, want: 1},
		{name: "perfect negative", x: []float64{1, 2, 3}, y: []float64{3, 2, 1}, want: -1},
		{name: "incomplete pairs dropped", x: []float64{1, nan, 3, 4}, y: []float64{2, 100, nan, 8}, want: 1},
		{name: "one complete pair", x: []float64{1, nan}, y: []float64{2, 3}, wantNaN: true},
		{name: "zero variance", x: []float64{5, 5, 5}, y: []float64{1, 2, 3}, wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PairwiseCorrelation(tt.x, tt.y)
			if tt.wantNaN {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zttzhu/dataset-insights/internal/missingness"
	"github.com/zttzhu/dataset-insights/internal/shared/testutil"
	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

func newTestSummarizer(t *testing.T) *Summarizer {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	return NewSummarizer(logger, DefaultSummarizerConfig())
}

func TestSummarizer_Summary(t *testing.T) {
	ds := loadString(t, testutil.SampleCSV)
	mask := missingness.Pass(ds)

	summary := newTestSummarizer(t).Summary(context.Background(), ds, mask)

	assert.Equal(t, domain.Shape{Rows: 10, Columns: 5}, summary.Shape)
	assert.Equal(t, []domain.ColumnType{
		{Column: "id", DType: "int64"},
		{Column: "age", DType: "int64"},
		{Column: "salary", DType: "int64"},
		{Column: "department", DType: "object"},
		{Column: "score", DType: "float64"},
	}, summary.DTypes)

	require.Len(t, summary.NumericSummary, 4)
	age := summary.NumericSummary[1]
	assert.Equal(t, "age", age.Column)
	assert.Equal(t, 9, age.Count)
	assert.InDelta(t, 30, float64(age.P50), 1e-9)

	score := summary.NumericSummary[3]
	assert.Equal(t, "score", score.Column)
	assert.Equal(t, 7, score.Count)
}

func TestSummarizer_Summary_NoNumericColumns(t *testing.T) {
	ds := loadString(t, testutil.NoNumericCSV)

	summary := newTestSummarizer(t).Summary(context.Background(), ds, missingness.Pass(ds))

	assert.Empty(t, summary.NumericSummary)
	assert.NotNil(t, summary.NumericSummary)
}

func TestSummarizer_Schema(t *testing.T) {
	ds := loadString(t, testutil.MessyCSV)
	mask := missingness.Pass(ds)

	schema := newTestSummarizer(t).Schema(context.Background(), ds, mask)
	require.Len(t, schema, 5)

	byName := make(map[string]domain.ColumnSchema)
	for _, c := range schema {
		byName[c.Column] = c
	}

	dept := byName["department"]
	assert.Equal(t, "object", dept.DType)
	assert.Equal(t, 4, dept.MissingCount, "first-pass nulls plus flagged placeholders")
	assert.Equal(t, 3, dept.UniqueCount, "Marketing, Engineering, HR")
	assert.Equal(t, []any{"Marketing", "Engineering", "Engineering"}, dept.SampleValues)

	id := byName["id"]
	assert.Equal(t, 0, id.MissingCount)
	assert.Equal(t, 10, id.UniqueCount)
	assert.Equal(t, []any{1, 2, 3}, id.SampleValues)

	assert.Equal(t, 3, byName["score"].MissingCount)
	assert.Equal(t, 1, byName["age"].MissingCount)
}

func TestSummarizer_SchemaSampleSize(t *testing.T) {
	ds := loadString(t, testutil.SampleCSV)
	s := NewSummarizer(nil, SummarizerConfig{SampleValues: 1})

	schema := s.Schema(context.Background(), ds, nil)

	for _, c := range schema {
		assert.Len(t, c.SampleValues, 1, c.Column)
	}
}

func TestSummarizer_Correlation(t *testing.T) {
	ds := loadString(t, testutil.SampleCSV)

	corr := newTestSummarizer(t).Correlation(context.Background(), ds, missingness.Pass(ds))
	require.NotNil(t, corr)

	assert.Equal(t, []string{"id", "age", "salary", "score"}, corr.Columns)
	require.Len(t, corr.Values, 4)
	for i := range corr.Values {
		require.Len(t, corr.Values[i], 4)
		assert.Equal(t, domain.Float(1), corr.Values[i][i])
		for j := range corr.Values[i] {
			assert.Equal(t, corr.Values[i][j], corr.Values[j][i], "symmetric")
			assert.LessOrEqual(t, float64(corr.Values[i][j]), 1.0)
			assert.GreaterOrEqual(t, float64(corr.Values[i][j]), -1.0)
		}
	}
}

func TestSummarizer_CorrelationNeedsTwoNumericColumns(t *testing.T) {
	ds := loadString(t, "id,name\n1,a\n2,b\n")

	assert.Nil(t, newTestSummarizer(t).Correlation(context.Background(), ds, nil))
}

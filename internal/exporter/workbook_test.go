package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

func TestReportWriter_Workbook(t *testing.T) {
	w := newTestReportWriter(t)
	result := &domain.AnalysisResult{
		FileName: "sample.csv",
		Summary:  testSummary(),
		Schema: []domain.ColumnSchema{
			{Column: "age", DType: "int64", UniqueCount: 9, MissingCount: 1, SampleValues: []any{25, 30, 45}},
		},
		Missingness: []domain.ColumnMissingness{
			{Column: "age", MissingCount: 1, MissingPct: 10},
		},
		PlaceholderAudit: map[string]domain.PlaceholderAudit{
			"department": {Count: 2, Examples: []string{"??missing", "lost??"}},
		},
	}

	path, err := w.WriteWorkbook(result)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetSchema, SheetMissingness, SheetPlaceholder}, f.GetSheetList())

	name, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "sample.csv", name)

	header, err := f.GetCellValue(SheetSummary, "A5")
	require.NoError(t, err)
	assert.Equal(t, "column", header)

	std, err := f.GetCellValue(SheetSummary, "D6")
	require.NoError(t, err)
	assert.Empty(t, std, "NaN statistics are blank")

	samples, err := f.GetCellValue(SheetSchema, "E2")
	require.NoError(t, err)
	assert.Equal(t, "[25,30,45]", samples)

	pct, err := f.GetCellValue(SheetMissingness, "C2")
	require.NoError(t, err)
	assert.Equal(t, "10", pct)

	example, err := f.GetCellValue(SheetPlaceholder, "D2")
	require.NoError(t, err)
	assert.Equal(t, "lost??", example)
}

package dataprocessing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zttzhu/dataset-insights/internal/errors"
	"github.com/zttzhu/dataset-insights/internal/shared/testutil"
)

func loadString(t *testing.T, content string) *Dataset {
	t.Helper()
	ds, err := ReadCSV(strings.NewReader(content))
	require.NoError(t, err)
	return ds
}

func TestLoadCSV_Sample(t *testing.T) {
	path := testutil.WriteCSV(t, "sample.csv", []byte(testutil.SampleCSV))

	ds, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "age", "salary", "department", "score"}, ds.Columns())
	assert.Equal(t, 10, ds.Len())
	assert.Equal(t, 5, ds.NumColumns())

	tests := []struct {
		col     int
		dtype   string
		numeric bool
	}{
		{0, DTypeInt, true},
		{1, DTypeInt, true},
		{2, DTypeInt, true},
		{3, DTypeObject, false},
		{4, DTypeFloat, true},
	}
	for _, tt := range tests {
		t.Run(ds.Columns()[tt.col], func(t *testing.T) {
			assert.Equal(t, tt.dtype, ds.DType(tt.col))
			assert.Equal(t, tt.numeric, ds.IsNumeric(tt.col))
		})
	}
	assert.Equal(t, []int{0, 1, 2, 4}, ds.NumericColumns())
}

func TestDataset_Values(t *testing.T) {
	ds := loadString(t, testutil.SampleCSV)

	assert.Equal(t, "Engineering", ds.Value(0, 3))
	assert.Equal(t, 88.5, ds.Value(0, 4))
	assert.Equal(t, 25, ds.Value(0, 1))

	assert.True(t, ds.IsNull(2, 1), "empty age is null")
	assert.Nil(t, ds.Value(2, 1))
	assert.True(t, ds.IsNull(3, 3), "empty department is null")
	assert.False(t, ds.IsNull(0, 3))

	floats := ds.Floats(4)
	require.Len(t, floats, 10)
	assert.InDelta(t, 88.5, floats[0], 1e-9)
	assert.True(t, floats[1] != floats[1], "null score is NaN")
}

func TestReadCSV_FirstPassNullTokens(t *testing.T) {
	ds := loadString(t, testutil.MessyCSV)

	tests := []struct {
		name string
		row  int
		col  int
		null bool
	}{
		{name: "?? in text column", row: 0, col: 3, null: true},
		{name: "not available", row: 7, col: 3, null: true},
		{name: "missing in numeric column", row: 1, col: 4, null: true},
		{name: "????", row: 5, col: 4, null: true},
		{name: "--", row: 6, col: 4, null: true},
		{name: "?? in int column", row: 2, col: 1, null: true},
		{name: "wrapped keyword survives", row: 3, col: 3, null: false},
		{name: "trailing punctuation survives", row: 4, col: 3, null: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.null, ds.IsNull(tt.row, tt.col))
		})
	}

	assert.Equal(t, DTypeFloat, ds.DType(4), "placeholder tokens do not force text dtype")
	assert.Equal(t, DTypeInt, ds.DType(1))
}

func TestReadCSV_TokensAreCaseSensitive(t *testing.T) {
	ds := loadString(t, "a\nMissing\n LOST \nmissing\n")

	assert.False(t, ds.IsNull(0, 0))
	assert.False(t, ds.IsNull(1, 0))
	assert.True(t, ds.IsNull(2, 0))
}

func TestLoadCSV_Latin1Fallback(t *testing.T) {
	path := testutil.WriteCSV(t, "latin1.csv", testutil.Latin1CSV)

	ds, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "£9.99", ds.Value(0, 1))
	assert.Equal(t, DTypeObject, ds.DType(1))
}

func TestReadCSV_StripsBOM(t *testing.T) {
	ds := loadString(t, "\xEF\xBB\xBFid,name\n1,x\n")
	assert.Equal(t, []string{"id", "name"}, ds.Columns())
}

func TestReadCSV_PadsShortRows(t *testing.T) {
	ds := loadString(t, "a,b\n1,2\n3\n")

	assert.Equal(t, 2, ds.Len())
	assert.True(t, ds.IsNull(1, 1))
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{name: "header only", content: testutil.EmptyCSV, wantType: apperrors.ErrTypeEmptyInput, wantMsg: EmptyInputMessage},
		{name: "zero bytes", content: "", wantType: apperrors.ErrTypeEmptyInput, wantMsg: EmptyInputMessage},
		{name: "blank lines only", content: "\n\n\n", wantType: apperrors.ErrTypeEmptyInput, wantMsg: EmptyInputMessage},
		{name: "row wider than header", content: "a,b\n1,2,3\n", wantType: apperrors.ErrTypeParsing, wantMsg: "could not parse CSV"},
		{name: "unterminated quote", content: "a,b\n\"x,1\n", wantType: apperrors.ErrTypeParsing, wantMsg: "could not parse CSV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteCSV(t, "input.csv", []byte(tt.content))

			ds, err := LoadCSV(path)
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
			assert.Contains(t, apperrors.UserMessage(err), tt.wantMsg)
		})
	}
}

func TestLoadCSV_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Equal(t, "file not found: "+path, apperrors.UserMessage(err))
}

func TestDataset_ColumnsReturnsCopy(t *testing.T) {
	ds := loadString(t, "a,b\n1,2\n")

	cols := ds.Columns()
	cols[0] = "changed"

	assert.Equal(t, "a", ds.Columns()[0])
}

func TestReadCSV_BoolSpellings(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantDType string
		wantFirst any
	}{
		{name: "lowercase", content: "a\ntrue\nfalse\n", wantDType: DTypeBool, wantFirst: true},
		{name: "title case", content: "a\nTrue\nFalse\n", wantDType: DTypeBool, wantFirst: true},
		{name: "upper case", content: "a\nFALSE\nTRUE\n", wantDType: DTypeBool, wantFirst: false},
		{name: "mixed spellings", content: "a\nTrue\nfalse\nTRUE\n", wantDType: DTypeBool, wantFirst: true},
		{name: "unrecognised spelling", content: "a\ntRuE\nFalse\n", wantDType: DTypeObject, wantFirst: "tRuE"},
		{name: "bool words among text", content: "a\nTrue\nmaybe\n", wantDType: DTypeObject, wantFirst: "True"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := loadString(t, tt.content)
			assert.Equal(t, tt.wantDType, ds.DType(0))
			assert.Equal(t, tt.wantFirst, ds.Value(0, 0))
		})
	}
}

func TestReadCSV_DuplicateHeadersAreSuffixed(t *testing.T) {
	ds := loadString(t, "A,A,B\n1,2,3\n")
	assert.Equal(t, []string{"A_0", "A_1", "B"}, ds.Columns())
}

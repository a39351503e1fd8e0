package dataprocessing

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/charmap"

	apperrors "github.com/zttzhu/dataset-insights/internal/errors"
)

// EmptyInputMessage is reported for files with no header or no data rows.
const EmptyInputMessage = "CSV is empty or has no data rows."

// Column dtypes reported in summaries and schemas.
const (
	DTypeInt    = "int64"
	DTypeFloat  = "float64"
	DTypeBool   = "bool"
	DTypeObject = "object"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FirstPassNullTokens are the cell values treated as null while the CSV is
// parsed. Matching is exact and case-sensitive; anything else survives to the
// placeholder pass.
var FirstPassNullTokens = []string{
	// parser defaults
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
	// common placeholders
	"?", "??", "???", "????", "?????",
	"-", "--", "---",
	".", "..", "...",
	"*", "**", "***",
	"missing", "lost", "unknown", "unavailable", "not available",
	"not applicable", "undefined", "blank", "empty", "nil", "none",
	"n.a.", "na", "n.a", "no data", "no value", "tbd", "tba",
}

// Dataset is a loaded CSV held as a gota DataFrame. It is read-only after
// loading and satisfies missingness.Table.
type Dataset struct {
	df      dataframe.DataFrame
	columns []string
	series  []series.Series
}

// LoadCSV reads and parses the CSV file at path.
func LoadCSV(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewAppError(apperrors.ErrTypeNotFound, fmt.Sprintf("file not found: %s", path), nil).
				WithContext("path", path)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("could not read %s", path), err)
	}

	ds, err := parseBytes(data)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded CSV",
		slog.String("path", path),
		slog.Int("rows", ds.Len()),
		slog.Int("columns", len(ds.columns)))
	return ds, nil
}

// ReadCSV parses a CSV from r. Used for uploaded files.
func ReadCSV(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewStorageError("could not read CSV", err)
	}
	return parseBytes(data)
}

func parseBytes(data []byte) (*Dataset, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, apperrors.NewParsingError("could not parse CSV", err)
	}

	records, err := readRecords(text)
	if err != nil {
		return nil, apperrors.NewParsingError("could not parse CSV", err)
	}
	if len(records) < 2 || len(records[0]) == 0 {
		return nil, apperrors.NewEmptyInputError(EmptyInputMessage)
	}
	lowerBoolColumns(records)

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(FirstPassNullTokens),
	)
	if df.Err != nil {
		return nil, apperrors.NewParsingError("could not parse CSV", df.Err)
	}

	ds := &Dataset{df: df, columns: df.Names()}
	ds.series = make([]series.Series, len(ds.columns))
	for i, name := range ds.columns {
		ds.series[i] = df.Col(name)
	}
	return ds, nil
}

// decodeText returns data as UTF-8, falling back to ISO-8859-1 when the bytes
// are not valid UTF-8.
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	slog.Debug("CSV is not valid UTF-8, decoding as latin-1")
	return charmap.ISO8859_1.NewDecoder().Bytes(data)
}

var (
	nullTokens = toSet(FirstPassNullTokens)
	// boolWords maps the accepted spellings of booleans to the lowercase form
	// the type detector understands.
	boolWords = map[string]string{
		"true": "true", "True": "true", "TRUE": "true",
		"false": "false", "False": "false", "FALSE": "false",
	}
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// lowerBoolColumns rewrites True/TRUE style cells to lowercase in columns
// where every non-null cell is a boolean word, so those columns load as bool.
// Other columns are left untouched.
func lowerBoolColumns(records [][]string) {
	for col := range records[0] {
		seen := false
		for _, row := range records[1:] {
			cell := row[col]
			if _, null := nullTokens[cell]; null {
				continue
			}
			if _, ok := boolWords[cell]; !ok {
				seen = false
				break
			}
			seen = true
		}
		if !seen {
			continue
		}
		for _, row := range records[1:] {
			if lower, ok := boolWords[row[col]]; ok {
				row[col] = lower
			}
		}
	}
}

// readRecords splits text into records. Short rows are padded with empty
// cells; rows longer than the header are an error.
func readRecords(text []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	width := len(records[0])
	for i := 1; i < len(records); i++ {
		switch n := len(records[i]); {
		case n > width:
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", i+1, width, n)
		case n < width:
			padded := make([]string, width)
			copy(padded, records[i])
			records[i] = padded
		}
	}
	return records, nil
}

// Columns returns the column names in file order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return d.df.Nrow()
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// Value returns the typed cell value, or nil when the cell is null. String
// columns yield string values.
func (d *Dataset) Value(row, col int) any {
	el := d.series[col].Elem(row)
	if el.IsNA() {
		return nil
	}
	return el.Val()
}

// IsNull reports whether the cell was null after parsing.
func (d *Dataset) IsNull(row, col int) bool {
	return d.series[col].Elem(row).IsNA()
}

// DType returns the column's dtype name.
func (d *Dataset) DType(col int) string {
	switch d.series[col].Type() {
	case series.Int:
		return DTypeInt
	case series.Float:
		return DTypeFloat
	case series.Bool:
		return DTypeBool
	default:
		return DTypeObject
	}
}

// IsNumeric reports whether the column holds int or float values.
func (d *Dataset) IsNumeric(col int) bool {
	t := d.series[col].Type()
	return t == series.Int || t == series.Float
}

// NumericColumns returns the indices of numeric columns in file order.
func (d *Dataset) NumericColumns() []int {
	var cols []int
	for i := range d.columns {
		if d.IsNumeric(i) {
			cols = append(cols, i)
		}
	}
	return cols
}

// Floats returns a numeric column as float64 values, with NaN for nulls.
func (d *Dataset) Floats(col int) []float64 {
	return d.series[col].Float()
}

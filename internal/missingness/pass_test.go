package missingness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTable is an in-memory Table; a nil cell is null.
type memTable struct {
	columns []string
	cells   [][]any // row-major
}

func (m *memTable) Columns() []string { return m.columns }
func (m *memTable) Len() int          { return len(m.cells) }
func (m *memTable) Value(row, col int) any {
	return m.cells[row][col]
}
func (m *memTable) IsNull(row, col int) bool { return m.cells[row][col] == nil }

func column(name string, values ...any) *memTable {
	t := &memTable{columns: []string{name}}
	for _, v := range values {
		t.cells = append(t.cells, []any{v})
	}
	return t
}

func TestPass_EndToEndColumn(t *testing.T) {
	table := column("A", "1", "lost", "3", "??", "5")

	mask := Pass(table)

	assert.Equal(t, []bool{false, true, false, true, false}, mask.Column(0))
	assert.Equal(t, 2, mask.Count(0))

	rows := Summarize(table.Columns(), mask)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Column)
	assert.Equal(t, 2, rows[0].MissingCount)
	assert.Equal(t, 40.0, rows[0].MissingPct)
}

func TestPass_NeverDemotesNull(t *testing.T) {
	table := column("notes", nil, "present", nil, "??missing")

	mask := Pass(table)

	assert.True(t, mask.Missing(0, 0))
	assert.False(t, mask.Missing(1, 0))
	assert.True(t, mask.Missing(2, 0))
	assert.True(t, mask.Missing(3, 0))
}

// nullNumber is a table whose null cells still carry a value, to show the
// null flag wins over what normalization would say.
type nullNumber struct{ memTable }

func (n *nullNumber) IsNull(row, col int) bool { return row == 0 }

func TestPass_NullFlagWinsOverValue(t *testing.T) {
	table := &nullNumber{memTable: *column("id", "42", "43")}

	mask := Pass(table)

	assert.Equal(t, []bool{true, false}, mask.Column(0))
}

func TestPass_NonStringValuesStayPresent(t *testing.T) {
	table := column("mixed", 1, 2.5, true, []byte("??"), struct{}{}, "lost")

	mask := Pass(table)

	assert.Equal(t, []bool{false, false, false, false, false, true}, mask.Column(0))
}

func TestPass_FalsePositives(t *testing.T) {
	table := column("notes",
		"not missing",
		"customer_missing_reason",
		"lost_and_found",
		"available",
		"??missing",
	)

	mask, audit := PassWithAudit(table, 5)

	assert.Equal(t, 1, mask.Count(0))
	require.Contains(t, audit, "notes")
	assert.Equal(t, 1, audit["notes"].Count)
	assert.Equal(t, []string{"??missing"}, audit["notes"].Examples)
}

func TestPass_DoesNotMutateTable(t *testing.T) {
	table := column("A", " ??Lost ", "x")

	Pass(table)

	assert.Equal(t, " ??Lost ", table.cells[0][0])
	assert.Equal(t, "x", table.cells[1][0])
}

func TestPassWithAudit(t *testing.T) {
	table := &memTable{
		columns: []string{"token", "clean", "other"},
		cells: [][]any{
			{"??missing", "a", nil},
			{"??missing", "b", "---"},
			{"lost??", "c", "x"},
			{"lost??", "d", "y"},
			{"lost??", "e", "z"},
		},
	}

	tests := []struct {
		name         string
		maxExamples  int
		wantExamples []string
	}{
		{name: "capped at one", maxExamples: 1, wantExamples: []string{"??missing"}},
		{name: "unique in first-seen order", maxExamples: 5, wantExamples: []string{"??missing", "lost??"}},
		{name: "no examples", maxExamples: 0, wantExamples: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, audit := PassWithAudit(table, tt.maxExamples)

			assert.Equal(t, []string{"other", "token"}, audit.Columns())
			assert.Equal(t, 5, audit["token"].Count)
			assert.Equal(t, tt.wantExamples, audit["token"].Examples)
			assert.Equal(t, 1, audit["other"].Count, "null cells are not audited")
			assert.NotContains(t, audit, "clean")
			assert.Equal(t, 6, audit.Total())
		})
	}
}

func TestMask_Accessors(t *testing.T) {
	table := &memTable{
		columns: []string{"a", "b"},
		cells: [][]any{
			{nil, "1"},
			{"x", "n/a"},
			{"y", "2"},
		},
	}

	mask := Pass(table)

	assert.Equal(t, 3, mask.Rows())
	assert.Equal(t, 2, mask.Cols())
	assert.Equal(t, 2, mask.Total())

	col := mask.Column(0)
	col[1] = true
	assert.False(t, mask.Missing(1, 0), "Column returns a copy")
}

func TestPass_EmptyTable(t *testing.T) {
	table := &memTable{columns: []string{"a"}}

	mask, audit := PassWithAudit(table, 5)

	assert.Equal(t, 0, mask.Rows())
	assert.Equal(t, 0, mask.Count(0))
	assert.Empty(t, audit)
}

package missingness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	table := &memTable{
		columns: []string{"id", "age", "score", "department"},
		cells: [][]any{
			{"1", "25", nil, "Engineering"},
			{"2", nil, nil, "??"},
			{"3", "30", "88.5", "HR"},
		},
	}

	rows := Summarize(table.Columns(), Pass(table))

	require.Len(t, rows, 4)
	assert.Equal(t, "score", rows[0].Column)
	assert.Equal(t, 66.67, rows[0].MissingPct)
	assert.Equal(t, "age", rows[1].Column, "ties keep column order")
	assert.Equal(t, "department", rows[2].Column)
	assert.Equal(t, 33.33, rows[2].MissingPct)
	assert.Equal(t, "id", rows[3].Column)
	assert.Equal(t, 0, rows[3].MissingCount)
	assert.Equal(t, 0.0, rows[3].MissingPct)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].MissingPct, rows[i].MissingPct)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 30.0, Percent(3, 10))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 0.0, Percent(0, 7))
	assert.Equal(t, 0.0, Percent(1, 0))
	assert.Equal(t, 100.0, Percent(4, 4))
}

func TestAudit_ToDomain(t *testing.T) {
	audit := Audit{"a": {Count: 2, Examples: []string{"??"}}}

	out := audit.ToDomain()
	out["a"].Examples[0] = "changed"

	assert.Equal(t, 2, out["a"].Count)
	assert.Equal(t, "??", audit["a"].Examples[0])
}

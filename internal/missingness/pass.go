package missingness

// Table is the read-only view of a loaded dataset that the pass walks.
//
// Value returns the raw cell value; IsNull reports whether loading already
// marked the cell as null.
type Table interface {
	Columns() []string
	Len() int
	Value(row, col int) any
	IsNull(row, col int) bool
}

// Mask records, per cell, whether the value is treated as absent. Entries are
// stored column-major. A Mask is never modified after the pass returns it.
type Mask struct {
	rows  int
	cells [][]bool
}

func newMask(rows, cols int) *Mask {
	cells := make([][]bool, cols)
	for c := range cells {
		cells[c] = make([]bool, rows)
	}
	return &Mask{rows: rows, cells: cells}
}

// Rows returns the number of rows covered by the mask.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns covered by the mask.
func (m *Mask) Cols() int { return len(m.cells) }

// Missing reports whether the cell at (row, col) is treated as absent.
func (m *Mask) Missing(row, col int) bool {
	return m.cells[col][row]
}

// Column returns a copy of one column's mask slice.
func (m *Mask) Column(col int) []bool {
	out := make([]bool, m.rows)
	copy(out, m.cells[col])
	return out
}

// Count returns the number of missing cells in a column.
func (m *Mask) Count(col int) int {
	n := 0
	for _, missing := range m.cells[col] {
		if missing {
			n++
		}
	}
	return n
}

// Total returns the number of missing cells across the whole table.
func (m *Mask) Total() int {
	n := 0
	for c := range m.cells {
		n += m.Count(c)
	}
	return n
}

// Pass builds the missing mask for t. Cells that are already null stay
// missing; every other cell holding a string is normalized and matched against
// the placeholder vocabulary. Values of any other type are left present.
func Pass(t Table) *Mask {
	m, _ := pass(t, 0)
	return m
}

// PassWithAudit is Pass plus a record of what the second pass flagged: per
// column, the number of cells it turned missing and up to maxExamples distinct
// raw values in first-seen order.
func PassWithAudit(t Table, maxExamples int) (*Mask, Audit) {
	return pass(t, maxExamples)
}

func pass(t Table, maxExamples int) (*Mask, Audit) {
	cols := t.Columns()
	rows := t.Len()
	m := newMask(rows, len(cols))
	audit := Audit{}

	for c, name := range cols {
		var entry *AuditEntry
		for r := 0; r < rows; r++ {
			if t.IsNull(r, c) {
				m.cells[c][r] = true
				continue
			}
			raw := t.Value(r, c)
			canonical, ok := Canonical(raw)
			if !ok || !IsPlaceholder(canonical) {
				continue
			}
			m.cells[c][r] = true

			if entry == nil {
				entry = &AuditEntry{Examples: []string{}}
			}
			entry.record(raw.(string), maxExamples)
		}
		if entry != nil {
			audit[name] = *entry
		}
	}
	return m, audit
}

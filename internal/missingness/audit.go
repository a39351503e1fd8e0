package missingness

import "sort"

// AuditEntry summarizes the placeholders found in one column by the second
// pass.
type AuditEntry struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

func (e *AuditEntry) record(raw string, maxExamples int) {
	e.Count++
	if len(e.Examples) >= maxExamples {
		return
	}
	for _, seen := range e.Examples {
		if seen == raw {
			return
		}
	}
	e.Examples = append(e.Examples, raw)
}

// Audit maps column name to what the second pass flagged there. Columns where
// nothing was flagged are absent.
type Audit map[string]AuditEntry

// Columns returns the audited column names in sorted order.
func (a Audit) Columns() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total returns the number of cells flagged across all columns.
func (a Audit) Total() int {
	n := 0
	for _, e := range a {
		n += e.Count
	}
	return n
}

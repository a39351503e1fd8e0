package missingness

import (
	"math"
	"sort"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// Summarize turns a mask into the per-column missingness table, sorted by
// missing percentage descending. Columns with equal percentages keep their
// original order. The mask must cover at least one row.
func Summarize(columns []string, m *Mask) []domain.ColumnMissingness {
	out := make([]domain.ColumnMissingness, len(columns))
	for c, name := range columns {
		count := m.Count(c)
		out[c] = domain.ColumnMissingness{
			Column:       name,
			MissingCount: count,
			MissingPct:   Percent(count, m.Rows()),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MissingPct > out[j].MissingPct
	})
	return out
}

// Percent returns count/total*100 rounded to two decimals.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}

// ToDomain converts an audit into its contract representation.
func (a Audit) ToDomain() map[string]domain.PlaceholderAudit {
	out := make(map[string]domain.PlaceholderAudit, len(a))
	for name, e := range a {
		examples := make([]string, len(e.Examples))
		copy(examples, e.Examples)
		out[name] = domain.PlaceholderAudit{Count: e.Count, Examples: examples}
	}
	return out
}

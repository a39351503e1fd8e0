package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// SampleCSV is a well-formed file with numeric and text columns and a few
// empty cells: age 1, department 1, score 3.
const SampleCSV = `id,age,salary,department,score
1,25,50000,Engineering,88.5
2,30,60000,Marketing,
3,,75000,Engineering,92.0
4,45,80000,,78.3
5,28,55000,Marketing,85.0
6,35,90000,Engineering,
7,22,48000,HR,70.1
8,40,70000,HR,
9,33,65000,Marketing,81.0
10,29,58000,Engineering,76.4
`

// MessyCSV carries placeholder tokens. Missing after both passes:
// department 4, score 3, age 1.
const MessyCSV = `id,age,salary,department,score
1,25,50000,??,88.5
2,30,60000,Marketing,missing
3,??,75000,Engineering,92.0
4,45,80000,??missing,78.3
5,28,55000,lost??,85.0
6,35,90000,Engineering,????
7,22,48000,HR,--
8,40,70000,not available,91.0
9,33,65000,Marketing,81.0
10,29,58000,Engineering,76.4
`

// FalsePositiveCSV holds text that mentions placeholder words without being
// a placeholder. Nothing in it is missing.
const FalsePositiveCSV = `id,description,category,status
1,not missing,customer_missing_reason,lost_and_found
2,something unknown here,missing_data_flag,found it
3,value is present,reason_unknown_code,active
`

// EmptyCSV has a header and no data rows.
const EmptyCSV = "col1,col2,col3\n"

// NoNumericCSV has only text columns.
const NoNumericCSV = "name,city\nAlice,NYC\nBob,LA\n"

// Latin1CSV is "id,price\n1,£9.99\n2,£19.50\n" encoded as ISO-8859-1.
var Latin1CSV = []byte("id,price\n1,\xa39.99\n2,\xa319.50\n")

// WriteCSV writes content to name inside a fresh temporary directory and
// returns the file path.
func WriteCSV(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// RandomCSV generates a deterministic people table with rows data rows.
// Every fifth email is replaced by a wrapped placeholder so callers know
// exactly how many cells the placeholder pass should flag: rows/5.
func RandomCSV(seed int64, rows int) string {
	faker := gofakeit.New(seed)
	placeholders := []string{"??unknown", "--n/a--", "lost!", "  Not Available  ", "#tbd#"}

	var b strings.Builder
	b.WriteString("id,name,email,age,balance\n")
	for i := 0; i < rows; i++ {
		email := faker.Email()
		if i%5 == 4 {
			email = placeholders[(i/5)%len(placeholders)]
		}
		fmt.Fprintf(&b, "%d,%s,%s,%d,%.2f\n",
			i+1,
			strings.ReplaceAll(faker.Name(), ",", " "),
			email,
			faker.Number(18, 90),
			faker.Float64Range(0, 10000),
		)
	}
	return b.String()
}

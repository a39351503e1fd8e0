// Package shared holds helpers used across packages that belong to no
// single domain.
//
// The testutil subpackage provides CSV fixtures and an in-memory slog
// handler for asserting on log output:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    path := testutil.WriteCSV(t, "sample.csv", []byte(testutil.SampleCSV))
//	    // ...
//	    testutil.AssertNoErrors(t, logs)
//	}
package shared

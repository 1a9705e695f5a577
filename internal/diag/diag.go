// Package diag is the single choke point for the "diagnostics only"
// channel described by the arithmetic core's error taxonomy: a carry,
// borrow, or quotient digit that mathematics proves cannot occur in a
// given branch is logged here and execution continues, so that the
// test suite can still exercise every branch.
package diag

import (
	"fmt"
	"os"
)

// Logf is the diagnostic sink. Tests may replace it to capture
// output instead of writing to stderr.
var Logf = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Package invariants gates lifetime and structural assertions that are too
// expensive, or too strict, to enforce in normal builds. Build with the
// "invariants" tag (the "race" tag implies it) to turn the assertions on.
package invariants

import "fmt"

// Violated reports a contract violation. It panics in invariant builds and
// must only be called behind an Enabled check so the formatting cost is not
// paid in normal builds.
func Violated(format string, args ...any) {
	panic(fmt.Sprintf("invariant violated: "+format, args...))
}

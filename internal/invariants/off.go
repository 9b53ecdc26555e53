//go:build !invariants && !race

package invariants

// Enabled is true if we were built with the "invariants" or "race" build
// tags. Code guarded by Enabled compiles away entirely in normal builds.
const Enabled = false

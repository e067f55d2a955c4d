package synth

import "errors"

// ErrSolverUnknown marks the fatal "solver-unknown" error kind from
// spec.md §7: any solver check that returns neither Sat nor Unsat (a
// genuine Z3 "unknown", or a query that hit --timeout) aborts the run.
// Unlike a model-indeterminate value (handled locally by Reconstruct's
// defaults), this never has a local recovery.
var ErrSolverUnknown = errors.New("synth: solver returned unknown status")

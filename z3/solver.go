//go:build cgo
// +build cgo

package z3

/*
#include <stdlib.h>
#include "z3.h"
*/
import "C"

import (
	"errors"
	"runtime"
	"unsafe"
)

// Solver wraps a Z3_solver handle and provides a Go-friendly API for building
// and checking verification problems tied to the owning Context.
type Solver struct {
	ctx *Context
	s   C.Z3_solver
}

// CheckResult captures the outcome of a solver check.
type CheckResult int

const (
	// Unknown indicates the solver could not determine satisfiability.
	Unknown CheckResult = iota
	// Sat indicates the problem is satisfiable.
	Sat
	// Unsat indicates the problem is unsatisfiable.
	Unsat
)

// NewSolver creates a fresh solver attached to the context. The returned
// solver automatically tracks a Go finalizer so leaked solver handles are
// still released when the GC runs.
func (ctx *Context) NewSolver() *Solver {
	s := &Solver{ctx, C.Z3_mk_solver(ctx.c)}
	C.Z3_solver_inc_ref(ctx.c, s.s)
	runtime.SetFinalizer(s, func(x *Solver) { x.Close() })
	return s
}

// Close releases the underlying Z3 solver reference. Repeated calls are safe
// and become no-ops once the solver handle has been cleared.
func (s *Solver) Close() {
	if s != nil && s.s != nil {
		C.Z3_solver_dec_ref(s.ctx.c, s.s)
		s.s = nil
	}
}

// SetGlobalParam sets a global Z3 parameter such as "timeout". Global
// parameters must be configured before creating contexts and affect every
// solver in the current process.
func SetGlobalParam(key, value string) {
	k := C.CString(key)
	v := C.CString(value)
	C.Z3_set_param_value(nil, k, v)
	C.free(unsafe.Pointer(k))
	C.free(unsafe.Pointer(v))
}

// Assert adds a constraint to the solver without copying it. The AST must have
// been created in the same context as the solver.
func (s *Solver) Assert(a AST) {
	C.Z3_solver_assert(s.ctx.c, s.s, a.a)
}

// Push creates a new solver scope, allowing constraints to be added and later
// discarded with a matching Pop.
func (s *Solver) Push() {
	C.Z3_solver_push(s.ctx.c, s.s)
}

// Pop removes the given number of solver scopes. Passing 0 leaves scopes
// untouched. Z3 rejects a value larger than the number of scopes with an error
// code; since contexts install a no-op error handler, such a call does not
// panic and leaves the scopes as they were.
func (s *Solver) Pop(n uint) {
	C.Z3_solver_pop(s.ctx.c, s.s, C.uint(n))
}

// Check runs the solver with the currently asserted constraints and returns the
// Z3 check result. Unknown results are surfaced with the textual reason from
// Z3 when available.
func (s *Solver) Check() (CheckResult, error) {
	r := C.Z3_solver_check(s.ctx.c, s.s)
	switch r {
	case C.Z3_L_TRUE:
		return Sat, nil
	case C.Z3_L_FALSE:
		return Unsat, nil
	default:
		rstr := C.Z3_solver_get_reason_unknown(s.ctx.c, s.s)
		if rstr != nil {
			return Unknown, errors.New(C.GoString(rstr))
		}
		return Unknown, errors.New("unknown")
	}
}

// Model retrieves the current model if available. The returned model must be
// closed by the caller (or allowed to leak for GC finalization) to avoid
// accumulating references inside Z3.
func (s *Solver) Model() *Model {
	m := C.Z3_solver_get_model(s.ctx.c, s.s)
	if m == nil {
		return nil
	}
	C.Z3_model_inc_ref(s.ctx.c, m)
	mod := &Model{s.ctx, m}
	runtime.SetFinalizer(mod, func(x *Model) { x.Close() })
	return mod
}


//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
*/
import "C"

// BVSort returns a bit-vector sort of the given width.
func (ctx *Context) BVSort(width int) Sort {
	return Sort{ctx, C.Z3_mk_bv_sort(ctx.c, C.uint(width))}
}

// BVSize returns the bit width of a bit-vector sort, or 0 if s is not one.
func BVSize(s Sort) int {
	if s.ctx == nil || s.s == nil {
		return 0
	}
	return int(C.Z3_get_bv_sort_size(s.ctx.c, s.s))
}

// BVVal creates a bit-vector numeral of the given width from a uint64.
func (ctx *Context) BVVal(v uint64, width int) AST {
	a := C.Z3_mk_unsigned_int64(ctx.c, C.uint64_t(v), ctx.BVSort(width).s)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// BVConst declares a bit-vector constant of the given width.
func (ctx *Context) BVConst(name string, width int) AST {
	return ctx.Const(name, ctx.BVSort(width))
}

// BVSub builds two's-complement subtraction x - y over bit-vectors.
func BVSub(x, y AST) AST {
	ctx := x.ctx
	a := C.Z3_mk_bvsub(ctx.c, x.a, y.a)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// BVAnd builds bitwise conjunction over bit-vectors.
func BVAnd(x, y AST) AST {
	ctx := x.ctx
	a := C.Z3_mk_bvand(ctx.c, x.a, y.a)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// BVUlt builds the unsigned constraint x < y over bit-vectors.
func BVUlt(x, y AST) AST {
	ctx := x.ctx
	a := C.Z3_mk_bvult(ctx.c, x.a, y.a)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// BoolToBV coerces a boolean AST into one of two bit-vector values via ite,
// the canonical "boolean to W-bit bit-vector" conversion.
func BoolToBV(b, trueVal, falseVal AST) AST {
	return Ite(b, trueVal, falseVal)
}

// Simplify runs Z3's simplifier on an expression, returning a (hopefully)
// simpler equivalent AST. Used by concrete oracle evaluation to fold a
// symbolic expression applied to a literal input down to a numeral.
func Simplify(a AST) AST {
	if a.ctx == nil || a.a == nil {
		return a
	}
	out := C.Z3_simplify(a.ctx.c, a.a)
	C.Z3_inc_ref(a.ctx.c, out)
	return AST{a.ctx, out}
}

// AsUint64 tries to read the AST as a bit-vector (or integer) numeral.
// Mirrors AsInt64's numeral-check-then-extract shape.
func (a AST) AsUint64() (uint64, bool) {
	if a.ctx == nil || a.a == nil {
		return 0, false
	}
	if !bool(C.Z3_is_numeral_ast(a.ctx.c, a.a)) {
		return 0, false
	}
	var out C.uint64_t
	if bool(C.Z3_get_numeral_uint64(a.ctx.c, a.a, &out)) {
		return uint64(out), true
	}
	return 0, false
}

//go:build !cgo
// +build !cgo

package z3

// Placeholder bit-vector API for documentation-only builds (no cgo).

func (ctx *Context) BVSort(width int) Sort         { return Sort{} }
func BVSize(s Sort) int                            { return 0 }
func (ctx *Context) BVVal(v uint64, width int) AST { return AST{} }
func (ctx *Context) BVConst(name string, width int) AST {
	return AST{}
}
func BVSub(x, y AST) AST                  { return AST{} }
func BVAnd(x, y AST) AST                  { return AST{} }
func BVUlt(x, y AST) AST                  { return AST{} }
func BoolToBV(b, trueVal, falseVal AST) AST { return AST{} }
func Simplify(a AST) AST                  { return a }
func (a AST) AsUint64() (uint64, bool)    { return 0, false }

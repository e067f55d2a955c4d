//go:build cgo
// +build cgo

// Package z3 provides a minimal Go binding to Z3's C API.
// Prototype: limited functions for context, basic ASTs, solver, and model.
package z3

/*
// cgo headers (linker flags are provided via separate build-tagged files).
#include <stdlib.h>
#include "z3.h"

int model_eval_wrap(Z3_context c, Z3_model m, Z3_ast a, int model_completion, Z3_ast* out) {
	return Z3_model_eval(c, m, a, model_completion, out);
}

// Install a no-op error handler so Z3 doesn't abort on errors; we'll query errors from Go.
void go_z3_error_handler(Z3_context c, Z3_error_code e) {
	// no-op
}
static void z3_set_noop_error_handler(Z3_context c) {
	Z3_set_error_handler(c, go_z3_error_handler);
}
*/
import "C"
import (
	"runtime"
	"strconv"
	"unsafe"
)

// Context wraps Z3_context.
type Context struct {
	c C.Z3_context
}

// Config wraps Z3_config.
type Config struct{ cfg C.Z3_config }

// NewConfig creates a default config and enables model construction so that
// solver models can be queried without additional configuration. Callers can
// mutate the returned Config via SetParam before NewContext consumes it.
func NewConfig() *Config {
	cfg := &Config{cfg: C.Z3_mk_config()}
	// Ensure models are constructed by default so Model() and Eval() are meaningful.
	k := C.CString("model")
	v := C.CString("true")
	C.Z3_set_param_value(cfg.cfg, k, v)
	C.free(unsafe.Pointer(k))
	C.free(unsafe.Pointer(v))
	// Enable auto configuration similar to command-line default.
	k2 := C.CString("auto_config")
	v2 := C.CString("true")
	C.Z3_set_param_value(cfg.cfg, k2, v2)
	C.free(unsafe.Pointer(k2))
	C.free(unsafe.Pointer(v2))
	return cfg
}

// SetParam sets a configuration parameter before creating a context. Z3 only
// consults these parameters at context creation time, so mutating the config
// after NewContext has been called has no effect on existing contexts.
func (cfg *Config) SetParam(key, value string) {
	if cfg == nil || cfg.cfg == nil {
		return
	}
	k := C.CString(key)
	v := C.CString(value)
	C.Z3_set_param_value(cfg.cfg, k, v)
	C.free(unsafe.Pointer(k))
	C.free(unsafe.Pointer(v))
}

// Close frees the config. It is safe to call multiple times or on a nil
// receiver.
func (cfg *Config) Close() {
	if cfg != nil && cfg.cfg != nil {
		C.Z3_del_config(cfg.cfg)
		cfg.cfg = nil
	}
}

// NewContext creates a new Z3 context with the given config (optional). When no
// config is provided a temporary config is created under the hood. Contexts
// install a no-op error handler so Z3 surfaces errors through Go return values
// instead of aborting the process.
func NewContext(cfg *Config) *Context {
	var c C.Z3_context
	if cfg != nil {
		c = C.Z3_mk_context(cfg.cfg)
	} else {
		tmp := C.Z3_mk_config()
		c = C.Z3_mk_context(tmp)
		C.Z3_del_config(tmp)
	}
	// Ensure errors are reported via error codes/messages instead of aborting.
	C.z3_set_noop_error_handler(c)
	ctx := &Context{c: c}
	runtime.SetFinalizer(ctx, func(x *Context) { x.Close() })
	return ctx
}

// Close deletes the context. After Close returns the context must not be
// used.
func (ctx *Context) Close() {
	if ctx != nil && ctx.c != nil {
		C.Z3_del_context(ctx.c)
		ctx.c = nil
	}
}

// Sort wraps Z3_sort.
type Sort struct {
	ctx *Context
	s   C.Z3_sort
}

// AST wraps Z3_ast.
type AST struct {
	ctx *Context
	a   C.Z3_ast
}

// FuncDecl wraps Z3_func_decl.
type FuncDecl struct {
	ctx *Context
	d   C.Z3_func_decl
}

// BoolSort returns the boolean sort.
func (ctx *Context) BoolSort() Sort {
	return Sort{ctx, C.Z3_mk_bool_sort(ctx.c)}
}

// IntSort returns the integer sort representing mathematical integers.
func (ctx *Context) IntSort() Sort {
	return Sort{ctx, C.Z3_mk_int_sort(ctx.c)}
}

// StringSymbol creates a Z3 symbol from the provided Go string.
func (ctx *Context) StringSymbol(name string) C.Z3_symbol {
	cstr := C.CString(name)
	defer C.free(unsafe.Pointer(cstr))
	return C.Z3_mk_string_symbol(ctx.c, cstr)
}

// Const creates a constant with the given name and sort.
func (ctx *Context) Const(name string, s Sort) AST {
	sym := ctx.StringSymbol(name)
	a := C.Z3_mk_const(ctx.c, sym, s.s)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// IntVal creates an integer numeral AST from the provided value.
func (ctx *Context) IntVal(v int64) AST {
	// Use string-based numeral creation to avoid platform-dependent C integer types.
	s := strconv.FormatInt(v, 10)
	cstr := C.CString(s)
	defer C.free(unsafe.Pointer(cstr))
	a := C.Z3_mk_numeral(ctx.c, cstr, ctx.IntSort().s)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// BoolVal creates a boolean constant true/false.
func (ctx *Context) BoolVal(b bool) AST {
	var a C.Z3_ast
	if b {
		a = C.Z3_mk_true(ctx.c)
	} else {
		a = C.Z3_mk_false(ctx.c)
	}
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// String returns an SMT-LIB-like textual representation of the AST.
func (a AST) String() string {
	if a.a == nil {
		return "<nil>"
	}
	s := C.Z3_ast_to_string(a.ctx.c, a.a)
	if s == nil {
		return "<invalid>"
	}
	return C.GoString(s)
}

// String returns an SMT-LIB-like textual representation of the sort.
func (s Sort) String() string {
	if s.ctx == nil || s.s == nil {
		return ""
	}
	str := C.Z3_sort_to_string(s.ctx.c, s.s)
	if str == nil {
		return "<invalid-sort>"
	}
	return C.GoString(str)
}

// NumeralString returns a textual numeral if the AST is numeric.
func (a AST) NumeralString() string {
	if a.a == nil {
		return ""
	}
	s := C.Z3_get_numeral_string(a.ctx.c, a.a)
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

//go:build cgo
// +build cgo

package synth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/gagomes/sematrope/internal/isa"
	"github.com/gagomes/sematrope/z3"
)

// Config parameterizes the CEGIS driver. Width, the oracle, and the
// immediate bound are compile-time constants in the reference design
// (spec.md §6) but are made configurable here so the CLI can expose them
// without touching the search itself.
type Config struct {
	Width     int
	Oracle    Oracle
	ImmBound  uint64
	MaxLength int           // 0 means unbounded, matching spec.md §5's non-goal of no upper k-bound.
	Timeout   time.Duration // 0 means no per-query solver timeout.
	Logger    zerolog.Logger
}

// Result is the outcome of a completed search: the equivalent program, how
// many synthesis/verification round-trips it took, and the final
// (monotonically grown) test-case set.
type Result struct {
	Program    isa.Program
	Iterations int
	TestCases  []uint64
}

// Run executes the CEGIS outer/inner loop: for increasing program length
// k, alternate synthesis queries (find a program correct on every
// accumulated test case) and verification queries (find an input where
// the candidate disagrees with the oracle), until verification reports
// UNSAT and the candidate is emitted, or ctx is cancelled, or MaxLength is
// exceeded.
func Run(ctx context.Context, cfg Config) (Result, error) {
	var testCases []uint64
	iterations := 0

	for k := 1; cfg.MaxLength == 0 || k <= cfg.MaxLength; k++ {
		cfg.Logger.Info().Int("k", k).Msg("trying program length")

		for {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}

			iterations++
			candidate, sat, err := synthesize(cfg, k, testCases)
			if err != nil {
				return Result{}, fmt.Errorf("synthesis query at k=%d: %w", k, err)
			}
			if !sat {
				cfg.Logger.Debug().Int("k", k).Int("tests", len(testCases)).
					Msg("no program of this length fits the current test set")
				break
			}

			cfg.Logger.Info().Str("program", candidate.Format()).Msg("candidate program")
			if cfg.Logger.GetLevel() <= zerolog.DebugLevel {
				cfg.Logger.Debug().Str("fields", spew.Sdump(candidate)).Msg("candidate detail")
			}

			ce, verified, err := verify(cfg, candidate)
			if err != nil {
				return Result{}, fmt.Errorf("verification query at k=%d: %w", k, err)
			}
			if verified {
				return Result{Program: candidate, Iterations: iterations, TestCases: testCases}, nil
			}

			cfg.Logger.Warn().
				Uint64("t", ce.X).Uint64("got", ce.Got).Uint64("want", ce.Want).
				Msg("counterexample")
			testCases = append(testCases, ce.X)
		}
	}

	return Result{}, fmt.Errorf("no program of length <= %d computes %s", cfg.MaxLength, cfg.Oracle.Name)
}

// Verify independently re-checks a program against an oracle, re-running
// the verification query from scratch. It implements spec.md §8's
// soundness property test ("re-run the verification query on the emitted
// program; it must be UNSAT") as a standalone operation, not only as an
// inner step of Run.
func Verify(cfg Config, prog isa.Program) error {
	ce, verified, err := verify(cfg, prog)
	if err != nil {
		return err
	}
	if !verified {
		return fmt.Errorf("program disagrees with %s at x=%#x: got %#x, want %#x",
			cfg.Oracle.Name, ce.X, ce.Got, ce.Want)
	}
	return nil
}

// withContext acquires a fresh solver context for the duration of fn and
// guarantees its release on every exit path, including a solver error,
// matching spec.md §5/§9's "solver context as a scoped resource."
func withContext(cfg Config, fn func(zctx *z3.Context) error) error {
	if cfg.Timeout > 0 {
		z3.SetGlobalParam("timeout", strconv.FormatInt(cfg.Timeout.Milliseconds(), 10))
	}
	zcfg := z3.NewConfig()
	defer zcfg.Close()
	zctx := z3.NewContext(zcfg)
	defer zctx.Close()
	return fn(zctx)
}

// synthesize runs one synthesis query: find a length-k program correct on
// every accumulated test case.
func synthesize(cfg Config, k int, testCases []uint64) (isa.Program, bool, error) {
	var prog isa.Program
	sat := false

	err := withContext(cfg, func(zctx *z3.Context) error {
		insns, constraints := MakeInstructions(zctx, k, cfg.Width, cfg.ImmBound)
		solver := zctx.NewSolver()
		defer solver.Close()

		for _, c := range constraints {
			solver.Assert(c)
		}
		for _, t := range testCases {
			want := cfg.Oracle.Concrete(zctx, t, cfg.Width)
			result := Encode(zctx, zctx.BVVal(t, cfg.Width), insns, cfg.Width)
			solver.Assert(z3.Eq(result, zctx.BVVal(want, cfg.Width)))
		}

		res, err := solver.Check()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrSolverUnknown, err)
		}
		if res == z3.Sat {
			sat = true
			model := solver.Model()
			defer model.Close()
			prog = Reconstruct(insns, model)
		}
		return nil
	})
	return prog, sat, err
}

// counterexample is a witness input on which a candidate disagrees with
// the oracle, together with the values both sides took there.
type counterexample struct {
	X, Got, Want uint64
}

// verify runs one verification query: is there an input on which prog
// disagrees with the oracle? A nil error with verified=false always
// carries a populated counterexample.
func verify(cfg Config, prog isa.Program) (counterexample, bool, error) {
	var ce counterexample
	verified := false

	err := withContext(cfg, func(zctx *z3.Context) error {
		x := zctx.BVConst("x", cfg.Width)
		progExpr := EncodeProgram(zctx, x, prog, cfg.Width)
		specExpr := cfg.Oracle.Symbolic(zctx, x, cfg.Width)

		solver := zctx.NewSolver()
		defer solver.Close()
		solver.Assert(z3.Eq(progExpr, specExpr).Not())

		res, err := solver.Check()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrSolverUnknown, err)
		}
		if res == z3.Unsat {
			verified = true
			return nil
		}
		model := solver.Model()
		defer model.Close()
		xv, ok := model.Eval(x, true).AsUint64()
		if !ok {
			return fmt.Errorf("verification model did not assign x")
		}
		got, _ := model.Eval(progExpr, true).AsUint64()
		want, _ := model.Eval(specExpr, true).AsUint64()
		ce = counterexample{X: xv, Got: got, Want: want}
		return nil
	})
	return ce, verified, err
}

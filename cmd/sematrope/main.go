//go:build cgo
// +build cgo

// Command sematrope searches for the shortest straight-line program in a
// small register machine that is provably equivalent to a chosen target
// function, using counterexample-guided inductive synthesis over an SMT
// solver. See the synth package for the search itself.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gagomes/sematrope/internal/synth"
)

func main() {
	app := &cli.App{
		Name:        "sematrope",
		Usage:       "bit-vector superoptimizer",
		Description: "Synthesizes the shortest equivalent straight-line program for a target function via CEGIS over an SMT solver.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 32, Usage: "register width W, in bits"},
			&cli.StringFlag{Name: "target", Value: "pow2-or-zero", Usage: "name of the oracle to synthesize against"},
			&cli.Uint64Flag{Name: "imm-bound", Value: 0x100, Usage: "upper bound on instruction immediates (unsigned)"},
			&cli.IntFlag{Name: "max-length", Value: 0, Usage: "cap on program length k (0 = unbounded)"},
			&cli.DurationFlag{Name: "timeout", Value: 0, Usage: "per-query solver timeout (0 = none)"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug-level progress trace"},
		},
		Action: run,
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		fmt.Fprintln(os.Stderr, "\ninterrupted")
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		if errors.Is(err, ctx.Err()) {
			fmt.Fprintln(os.Stderr, "search interrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	oracleName := cctx.String("target")
	oracle, ok := synth.Registry[oracleName]
	if !ok {
		return fmt.Errorf("unknown target %q (known: %s)", oracleName, knownTargets())
	}

	cfg := synth.Config{
		Width:     cctx.Int("width"),
		Oracle:    oracle,
		ImmBound:  cctx.Uint64("imm-bound"),
		MaxLength: cctx.Int("max-length"),
		Timeout:   cctx.Duration("timeout"),
		Logger:    newLogger(cctx.Bool("verbose")),
	}

	start := time.Now()
	result, err := synth.Run(cctx.Context, cfg)
	if err != nil {
		return err
	}

	cfg.Logger.Info().
		Int("iterations", result.Iterations).
		Int("length", result.Program.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	fmt.Println(result.Program.Format())
	return nil
}

func knownTargets() string {
	names := make([]string, 0, len(synth.Registry))
	for name := range synth.Registry {
		names = append(names, name)
	}
	return fmt.Sprintf("%v", names)
}

//go:build cgo
// +build cgo

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger builds the stderr progress-trace logger described by
// spec.md §6 ("Standard error receives progress trace: per-iteration
// headers, candidate programs, and counterexample reports"), using a
// zerolog console writer the same way eigerco-strawberry's pkg/log does.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: ""}
	cw.FormatTimestamp = func(interface{}) string { return "" }
	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("%-5s", i))
	}
	cw.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}

	return zerolog.New(cw).Level(level).With().Logger()
}

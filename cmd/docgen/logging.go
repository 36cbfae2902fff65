// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// newHandler returns a colorized slog handler writing to w. Debug records
// are emitted only when verbose is set.
func newHandler(w io.Writer, verbose bool) slog.Handler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(newHandler(w, verbose))
}

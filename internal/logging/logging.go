// Package logging configures slog for the command line. Records go to
// stderr so stdout carries only program output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// New returns a logger writing tinted records to w.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !color,
	})
	return slog.New(slogctx.NewHandler(h, &slogctx.HandlerOptions{}))
}

// Setup installs a logger as the default and returns ctx carrying it.
func Setup(ctx context.Context, w io.Writer, level slog.Level, color bool) context.Context {
	l := New(w, level, color)
	slog.SetDefault(l)
	return slogctx.NewCtx(ctx, l)
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Errorf("unknown log level %q (expected debug, info, warn, or error)", s)
	}
	return l, nil
}

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/doeshing/pyrun/internal/ports"
)

// StdLogger routes ports.Logger calls to a slog text handler.
// Nothing is emitted unless verbose is set.
type StdLogger struct {
	verbose bool
	log     *slog.Logger
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing to w.
func New(w io.Writer, verbose bool) *StdLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &StdLogger{verbose: verbose, log: slog.New(handler).With("component", "pyrun")}
}

// SetVerbose toggles output after construction, once CLI flags are parsed.
func (l *StdLogger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelDebug, msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelInfo, msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelWarn, msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if err != nil {
		if fields == nil {
			fields = map[string]interface{}{}
		}
		fields["error"] = err.Error()
	}
	l.emit(slog.LevelError, msg, fields)
}

func (l *StdLogger) emit(level slog.Level, msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.log.LogAttrs(context.Background(), level, msg, attrs...)
}

// Nop returns a logger that discards everything.
func Nop() *StdLogger {
	return New(io.Discard, false)
}

var _ ports.Logger = (*StdLogger)(nil)

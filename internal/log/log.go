// Package log provides context-aware diagnostic logging for cc-usage.
package log

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Logger writes diagnostics and verbose resolution tracing to stderr.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output. Suppressed in quiet mode.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output. Suppressed in quiet mode.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Verbosef writes resolution tracing, for example which config file was
// read or which Claude directories were probed.
// Only prints when verbose mode is enabled.
func (l *Logger) Verbosef(format string, args ...any) {
	if l.verbose && !l.quiet {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Errorf writes an error message. Not suppressed in quiet mode.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.out, "error: "+format+"\n", args...)
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

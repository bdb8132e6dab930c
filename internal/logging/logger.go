// Package logging carries the structured logger threaded through the store,
// the dev server and the CLI. The default is a no-op so library callers
// never get output they did not ask for.
package logging

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

type noop struct{}

func NoOp() Logger { return noop{} }

func (noop) Debug(string, ...any) {}

func (noop) Info(string, ...any) {}

func (noop) Warn(string, ...any) {}

func (noop) Error(string, ...any) {}

func (n noop) WithFields(map[string]any) Logger { return n }

// OrNoOp returns l, or the no-op logger when l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOp()
	}
	return l
}

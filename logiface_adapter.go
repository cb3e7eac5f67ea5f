package sdm

import (
	"github.com/joeycumines/logiface"
)

// LogifaceLogger adapts a github.com/joeycumines/logiface typed logger to
// the kernel's Logger interface, so a simulation can route scheduler
// diagnostics through whatever logiface backend (zerolog, logrus, stumpy)
// the host application already uses, instead of the built-in DefaultLogger.
type LogifaceLogger[E logiface.Event] struct {
	logger *logiface.Logger[E]
}

// NewLogifaceLogger wraps an already-configured *logiface.Logger[E].
func NewLogifaceLogger[E logiface.Event](logger *logiface.Logger[E]) *LogifaceLogger[E] {
	return &LogifaceLogger[E]{logger: logger}
}

// IsEnabled reports whether entries at level would be logged.
func (l *LogifaceLogger[E]) IsEnabled(level LogLevel) bool {
	return l.logger.Level() >= toLogifaceLevel(level)
}

// Log writes a single entry via the wrapped logiface logger.
func (l *LogifaceLogger[E]) Log(entry LogEntry) {
	b := l.logger.Build(toLogifaceLevel(entry.Level))
	if b == nil {
		return
	}
	b = b.Str("category", entry.Category).Float32("time", entry.Time)
	if entry.Err != nil {
		b = b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

func toLogifaceLevel(level LogLevel) logiface.Level {
	switch level {
	case LevelDebug:
		return logiface.LevelDebug
	case LevelInfo:
		return logiface.LevelInformational
	case LevelWarn:
		return logiface.LevelWarning
	case LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}

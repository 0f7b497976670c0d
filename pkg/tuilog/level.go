package tuilog

import "log/slog"

// Level defines the severity of a log record.
type Level int

// Enum for log levels. The order is important: Trace is the most verbose,
// Error the most severe.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// SlogLevelTrace is the slog level that maps to LevelTrace. The slog
// facade has no built-in trace level, so hosts that want trace records
// log with this custom level:
//
//	slog.Log(ctx, tuilog.SlogLevelTrace, "very verbose detail")
const SlogLevelTrace slog.Level = slog.LevelDebug - 4

// String returns the display name of a Level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// levelFromSlog maps a slog level onto the five display levels. Levels
// between the named slog constants collapse onto the next named level
// below them, matching slog's own bucketing.
func levelFromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return LevelTrace
	case l < slog.LevelInfo:
		return LevelDebug
	case l < slog.LevelWarn:
		return LevelInfo
	case l < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

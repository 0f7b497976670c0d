package tuilog

// Colors maps each severity level to its display color. Having one field
// per level makes the mapping total: there is no lookup that can miss.
type Colors struct {
	Trace Color
	Debug Color
	Info  Color
	Warn  Color
	Error Color
}

// DefaultColors returns the built-in palette.
func DefaultColors() Colors {
	return Colors{
		Trace: RGBA(0, 1, 0, 1),
		Debug: RGBA(0, 0, 1, 1),
		Info:  RGBA(1, 1, 1, 1),
		Warn:  RGBA(1, 1, 0, 1),
		Error: RGBA(1, 0, 0, 1),
	}
}

// ForLevel returns the color configured for the given level.
func (c Colors) ForLevel(level Level) Color {
	switch level {
	case LevelTrace:
		return c.Trace
	case LevelDebug:
		return c.Debug
	case LevelWarn:
		return c.Warn
	case LevelError:
		return c.Error
	default:
		return c.Info
	}
}

// isZero reports whether no color has been set at all, which construction
// treats as "use the defaults".
func (c Colors) isZero() bool {
	return c == Colors{}
}

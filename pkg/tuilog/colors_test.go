package tuilog_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/quelltext/tuilog/pkg/tuilog"
)

func TestColorsForLevelIsTotal(t *testing.T) {
	colors := tuilog.Colors{
		Trace: tuilog.RGBA(0.1, 0, 0, 1),
		Debug: tuilog.RGBA(0.2, 0, 0, 1),
		Info:  tuilog.RGBA(0.3, 0, 0, 1),
		Warn:  tuilog.RGBA(0.4, 0, 0, 1),
		Error: tuilog.RGBA(0.5, 0, 0, 1),
	}

	tests := []struct {
		level tuilog.Level
		want  tuilog.Color
	}{
		{tuilog.LevelTrace, colors.Trace},
		{tuilog.LevelDebug, colors.Debug},
		{tuilog.LevelInfo, colors.Info},
		{tuilog.LevelWarn, colors.Warn},
		{tuilog.LevelError, colors.Error},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, colors.ForLevel(test.level), "level %s", test.level)
	}

	// Out-of-range levels must still resolve to a color, never panic.
	assert.Equal(t, colors.Info, colors.ForLevel(tuilog.Level(99)))
}

func TestDefaultColorsDistinguishSeverities(t *testing.T) {
	colors := tuilog.DefaultColors()
	seen := map[string]bool{}
	for _, level := range []tuilog.Level{
		tuilog.LevelTrace, tuilog.LevelDebug, tuilog.LevelInfo,
		tuilog.LevelWarn, tuilog.LevelError,
	} {
		c := colors.ForLevel(level)
		assert.Equal(t, float32(1), c.A, "default colors are opaque")
		seen[c.Hex()] = true
	}
	assert.Len(t, seen, 5, "every level has its own default color")
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		color tuilog.Color
		want  string
	}{
		{tuilog.RGBA(1, 0, 0, 1), "#ff0000"},
		{tuilog.RGBA(0, 1, 0, 1), "#00ff00"},
		{tuilog.RGBA(0, 0, 1, 0.5), "#0000ff"},
		{tuilog.RGBA(1, 1, 1, 1), "#ffffff"},
		{tuilog.RGBA(0, 0, 0, 1), "#000000"},
		// Out-of-range channels clamp instead of wrapping.
		{tuilog.RGBA(2, -1, 0.5, 1), "#ff0080"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.color.Hex())
	}
}

func TestColorTCell(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), tuilog.RGBA(1, 0, 0, 1).TCell())
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), tuilog.RGBA(0, 0, 0, 1).TCell())
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), tuilog.RGBA(1, 1, 1, 0).TCell())
}

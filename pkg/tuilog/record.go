package tuilog

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Record is a single raw log record as handed over by the logging facade.
// It is consumed during formatting and not retained.
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
}

// Color is an RGBA color with channels in the range 0.0 to 1.0. Terminals
// have no alpha channel, so A is carried for configuration compatibility
// but ignored when rendering.
type Color struct {
	R, G, B, A float32
}

// RGBA is a convenience constructor for Color.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the color as a "#rrggbb" string, the form tview's dynamic
// color tags and lipgloss both accept.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// TCell converts the color to a tcell.Color.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(channelByte(c.R)), int32(channelByte(c.G)), int32(channelByte(c.B)))
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Entry is one formatted, colored line as stored by the Buffer. Entries
// are immutable once created.
type Entry struct {
	Text  string
	Color Color
}

package tuilog

import (
	"strings"

	"github.com/rivo/tview"
)

// WindowSpec names and configures the target window for the log view.
type WindowSpec struct {
	Title string
	// Wrap enables soft-wrapping of long lines instead of horizontal
	// scrolling.
	Wrap bool
	// Border draws a frame around the window with the title on it.
	Border bool
}

// Window is the log view primitive. It wraps a tview.TextView configured
// for dynamic colors and embeds it, so a Window can be placed in any
// tview layout directly.
type Window struct {
	*tview.TextView
	lineCount int
}

// NewWindow creates a log window from a spec.
func NewWindow(spec WindowSpec) *Window {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(spec.Wrap)
	if spec.Border {
		tv.SetBorder(true)
		tv.SetTitle(" " + spec.Title + " ")
	}
	return &Window{TextView: tv}
}

// Draw renders the current buffer contents into the window. It is a pure
// read of the buffer and must be called from the UI goroutine (directly
// in a draw callback, or via Application.QueueUpdateDraw).
//
// If the view was scrolled to the bottom before this call, it is
// re-scrolled to the bottom afterwards so it keeps tracking the newest
// entries; a view the user has scrolled up stays where it is.
func (h *Handle) Draw(w *Window) {
	entries := h.Snapshot()

	row, _ := w.GetScrollOffset()
	_, _, _, height := w.GetInnerRect()
	atBottom := w.lineCount == 0 || row+height >= w.lineCount

	w.SetText(renderLines(entries))
	w.lineCount = w.GetOriginalLineCount()

	if atBottom {
		w.ScrollToEnd()
	}
}

// renderLines builds the color-tagged text for a set of entries, one line
// per entry. Entry text is escaped so bracketed message content cannot be
// misread as a color tag.
func renderLines(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		b.WriteString(e.Color.Hex())
		b.WriteByte(']')
		b.WriteString(tview.Escape(e.Text))
		b.WriteString("[-]")
	}
	return b.String()
}

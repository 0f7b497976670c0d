// Package tuilog routes log records into a live, color-coded tview window.
//
// Install the sink once with Init or InitWithConfig; it registers itself
// as the process-wide slog backend and returns a Handle. Hosts with their
// own frame loop call Handle.Draw once per frame against a Window they
// place in their layout; hosts that prefer a self-contained widget create
// a System, which owns its window and redraws it on a ticker.
package tuilog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrAlreadyInstalled is returned when Init or InitWithConfig is called a
// second time. The first sink stays active and keeps its buffered history.
var ErrAlreadyInstalled = errors.New("tuilog: a sink is already installed for this process")

// TargetKey is the attribute key the slog handler interprets as the
// record's target/module name instead of a plain key=value pair.
const TargetKey = "target"

// installed guards the process-wide sink registration.
var installed atomic.Bool

// Handle owns the buffer and configuration of one sink. The handle
// returned by Init is the application's access point for drawing; the
// global registration only serves the facade's dispatch path.
type Handle struct {
	cfg    Config
	buffer *Buffer
	mirror atomic.Pointer[mirrorSink]
}

// mirrorSink wraps the secondary output writer so it can be swapped
// atomically. A nil writer disables mirroring.
type mirrorSink struct {
	w io.Writer
}

// New builds a sink handle without installing it as the process logger.
// Use it to embed the log window into an existing slog handler chain, or
// in tests.
func New(cfg Config) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	h := &Handle{
		cfg:    cfg,
		buffer: NewBuffer(cfg.Capacity),
	}
	if cfg.Stdout {
		h.SetMirror(os.Stdout)
	} else {
		h.SetMirror(nil)
	}
	return h, nil
}

// Init installs a sink with the default configuration as the process-wide
// slog backend and returns its handle. It may be called at most once per
// process; further calls return ErrAlreadyInstalled.
func Init() (*Handle, error) {
	return InitWithConfig(DefaultConfig())
}

// InitWithConfig installs a sink with the given configuration. See Init.
func InitWithConfig(cfg Config) (*Handle, error) {
	h, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if !installed.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInstalled
	}
	slog.SetDefault(slog.New(h.Handler()))
	return h, nil
}

// Handler returns a slog.Handler that feeds this sink. The handler passes
// every record through regardless of level; filtering is the facade's
// concern.
func (h *Handle) Handler() slog.Handler {
	return &sinkHandler{sink: h, target: "app"}
}

// Log is the raw emit path: it formats and colors one record, appends it
// to the buffer and mirrors the line to the secondary output if one is
// set. A zero t is stamped with the current time. Log never fails; mirror
// write errors are swallowed so logging cannot destabilize the host.
func (h *Handle) Log(t time.Time, level Level, target, message string) {
	if t.IsZero() {
		t = time.Now()
	}
	rec := Record{Time: t, Level: level, Target: target, Message: message}
	text := Format(rec, h.cfg.Template, h.cfg.TimeFormat)
	h.buffer.Append(Entry{Text: text, Color: h.cfg.Colors.ForLevel(level)})

	// Mirroring happens after the buffer lock is released so console
	// latency never throttles producers.
	if m := h.mirror.Load(); m != nil && m.w != nil {
		_, _ = fmt.Fprintln(m.w, text)
	}
}

// SetMirror replaces the secondary output writer. Passing nil disables
// mirroring.
func (h *Handle) SetMirror(w io.Writer) {
	h.mirror.Store(&mirrorSink{w: w})
}

// Snapshot returns a consistent copy of the buffered entries in insertion
// order.
func (h *Handle) Snapshot() []Entry {
	return h.buffer.Snapshot()
}

// Len returns the number of buffered entries.
func (h *Handle) Len() int {
	return h.buffer.Len()
}

// Clear discards the buffered history.
func (h *Handle) Clear() {
	h.buffer.Clear()
}

// Config returns the sink's configuration snapshot.
func (h *Handle) Config() Config {
	return h.cfg
}

// sinkHandler adapts the slog facade to the sink. Pre-bound attributes are
// rendered as key=value suffixes; an attribute named TargetKey and group
// names set the record's target.
type sinkHandler struct {
	sink   *Handle
	target string
	attrs  []slog.Attr
}

func (s *sinkHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (s *sinkHandler) Handle(_ context.Context, r slog.Record) error {
	target := s.target
	var b strings.Builder
	b.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		if a.Key == TargetKey {
			target = a.Value.String()
			return
		}
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}
	for _, a := range s.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	s.sink.Log(r.Time, levelFromSlog(r.Level), target, b.String())
	return nil
}

func (s *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &sinkHandler{sink: s.sink, target: s.target}
	next.attrs = append(next.attrs, s.attrs...)
	for _, a := range attrs {
		if a.Key == TargetKey {
			next.target = a.Value.String()
			continue
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (s *sinkHandler) WithGroup(name string) slog.Handler {
	next := &sinkHandler{sink: s.sink, target: s.target}
	next.attrs = append(next.attrs, s.attrs...)
	if name != "" {
		if next.target == "" || next.target == "app" {
			next.target = name
		} else {
			next.target = next.target + "." + name
		}
	}
	return next
}

// Package compat provides adapters that route records from other logging
// and UI ecosystems into a tuilog sink.
package compat

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/quelltext/tuilog/pkg/tuilog"
)

// ZapCore is a zapcore.Core that forwards every entry into a tuilog
// handle, so zap-based applications get the same live log window.
type ZapCore struct {
	handle *tuilog.Handle
	fields []zapcore.Field
}

// NewZapCore creates a core feeding the given handle. Tee it with the
// application's existing core if zap should keep its other outputs:
//
//	logger := zap.New(zapcore.NewTee(existing, compat.NewZapCore(handle)))
func NewZapCore(handle *tuilog.Handle) *ZapCore {
	return &ZapCore{handle: handle}
}

// Enabled implements zapcore.LevelEnabler. The sink does no level
// filtering of its own.
func (c *ZapCore) Enabled(_ zapcore.Level) bool {
	return true
}

// With returns a child core carrying additional pre-bound fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	child := &ZapCore{handle: c.handle}
	child.fields = append(child.fields, c.fields...)
	child.fields = append(child.fields, fields...)
	return child
}

// Check implements zapcore.Core.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write formats the entry's fields as key=value suffixes and emits the
// record. The zap logger name becomes the target.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	target := ent.LoggerName
	if target == "" {
		target = "zap"
	}

	var b strings.Builder
	b.WriteString(ent.Message)
	if len(c.fields) > 0 || len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		appendFields(&b, enc)
	}

	c.handle.Log(ent.Time, levelFromZap(ent.Level), target, b.String())
	return nil
}

// Sync implements zapcore.Core. The sink has nothing to flush.
func (c *ZapCore) Sync() error {
	return nil
}

func appendFields(b *strings.Builder, enc *zapcore.MapObjectEncoder) {
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, enc.Fields[k])
	}
}

func levelFromZap(l zapcore.Level) tuilog.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return tuilog.LevelDebug
	case l == zapcore.InfoLevel:
		return tuilog.LevelInfo
	case l == zapcore.WarnLevel:
		return tuilog.LevelWarn
	default:
		return tuilog.LevelError
	}
}

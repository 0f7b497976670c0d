package tuilog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quelltext/tuilog/pkg/tuilog"
)

func TestFormat(t *testing.T) {
	stamp := time.Date(2024, 3, 9, 13, 37, 42, 123_000_000, time.UTC)
	rec := tuilog.Record{
		Time:    stamp,
		Level:   tuilog.LevelWarn,
		Target:  "engine.render",
		Message: "frame took too long",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			"default template",
			tuilog.DefaultTemplate,
			"13:37:42.123 WARN engine.render: frame took too long",
		},
		{
			"reordered placeholders",
			"{target} --- {level}: {message}",
			"engine.render --- WARN: frame took too long",
		},
		{
			"unrecognized placeholders pass through",
			"{level} {frame} {message} {thread}",
			"WARN {frame} frame took too long {thread}",
		},
		{
			"repeated placeholder",
			"{level}/{level}",
			"WARN/WARN",
		},
		{
			"no placeholders",
			"plain text",
			"plain text",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := tuilog.Format(rec, test.template, tuilog.DefaultTimeFormat)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestFormatAllPlaceholdersSubstituted(t *testing.T) {
	rec := tuilog.Record{
		Time:    time.Now(),
		Level:   tuilog.LevelInfo,
		Target:  "net",
		Message: "connected",
	}
	template := "{time} {level} {target} {message}"
	got := tuilog.Format(rec, template, tuilog.DefaultTimeFormat)

	assert.Contains(t, got, "INFO")
	assert.Contains(t, got, "net")
	assert.Contains(t, got, "connected")
	for _, token := range []string{"{time}", "{level}", "{target}", "{message}"} {
		assert.NotContains(t, got, token)
	}
}

func TestFormatZeroTime(t *testing.T) {
	rec := tuilog.Record{Level: tuilog.LevelDebug, Target: "x", Message: "m"}
	got := tuilog.Format(rec, "[{time}] {message}", tuilog.DefaultTimeFormat)
	assert.Equal(t, "[] m", got)
}

func TestFormatCustomTimeLayout(t *testing.T) {
	stamp := time.Date(2024, 3, 9, 13, 37, 42, 0, time.UTC)
	rec := tuilog.Record{Time: stamp, Level: tuilog.LevelInfo, Message: "m"}
	got := tuilog.Format(rec, "{time}", "2006-01-02 15:04:05")
	assert.Equal(t, "2024-03-09 13:37:42", got)
}

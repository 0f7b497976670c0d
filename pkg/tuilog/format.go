package tuilog

import "strings"

// Placeholders recognized by Format. Anything else in the template,
// including unknown {tokens}, passes through unchanged.
const (
	PlaceholderTime    = "{time}"
	PlaceholderLevel   = "{level}"
	PlaceholderTarget  = "{target}"
	PlaceholderMessage = "{message}"
)

// DefaultTemplate is the format applied when none is configured.
const DefaultTemplate = "{time} {level} {target}: {message}"

// DefaultTimeFormat is the layout used for the {time} placeholder when
// none is configured.
const DefaultTimeFormat = "15:04:05.000"

// Format renders a record into its display line by substituting the
// recognized placeholders in template. A zero record time renders {time}
// as the empty string. Format is pure and safe for concurrent use.
func Format(rec Record, template, timeFormat string) string {
	ts := ""
	if !rec.Time.IsZero() {
		if timeFormat == "" {
			timeFormat = DefaultTimeFormat
		}
		ts = rec.Time.Format(timeFormat)
	}
	r := strings.NewReplacer(
		PlaceholderTime, ts,
		PlaceholderLevel, rec.Level.String(),
		PlaceholderTarget, rec.Target,
		PlaceholderMessage, rec.Message,
	)
	return r.Replace(template)
}

// Package logging writes one JSON object per line, the shape shared by
// request logs, startup events and migration steps.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger serializes entries to w with a timestamp in loc.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	loc *time.Location
	now func() time.Time
}

// New returns a Logger writing to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{w: w, loc: loc, now: time.Now}
}

// Stdout is the process logger used outside of tests.
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Location returns the timezone timestamps are rendered in.
func (l *Logger) Location() *time.Location {
	return l.loc
}

// Log adds ts and level to data and writes it. level defaults to "error"
// when status is "error", "info" otherwise.
func (l *Logger) Log(data map[string]any) {
	entry := make(map[string]any, len(data)+2)
	for k, v := range data {
		entry[k] = v
	}
	entry["ts"] = l.now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		if entry["status"] == "error" {
			entry["level"] = "error"
		} else {
			entry["level"] = "info"
		}
	}

	b, err := json.Marshal(entry)
	if err != nil {
		b, _ = json.Marshal(map[string]any{
			"ts":    entry["ts"],
			"level": "error",
			"msg":   "log_marshal_failed",
			"error": err.Error(),
		})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(b, '\n'))
}

// Info logs msg at info level with extra fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.event("info", msg, fields)
}

// Error logs msg at error level with err attached.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	l.event("error", msg, fields)
}

func (l *Logger) event(level, msg string, fields map[string]any) {
	entry := map[string]any{"level": level, "msg": msg}
	for k, v := range fields {
		entry[k] = v
	}
	l.Log(entry)
}

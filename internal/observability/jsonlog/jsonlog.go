// Package jsonlog writes one JSON object per line: ts, level, msg plus the
// caller's fields.
package jsonlog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"
)

type Logger struct {
	base *log.Logger
	now  func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{
		base: log.New(w, "", 0), // no prefix; we emit JSON ourselves
		now:  time.Now,
	}
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit("INFO", msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit("ERROR", msg, fields)
}

// Printf lets the logger stand in wherever a *log.Logger style sink is
// expected; the formatted text becomes msg at INFO level.
func (l *Logger) Printf(format string, args ...any) {
	l.base.Print(l.line("INFO", fmt.Sprintf(format, args...), nil))
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	l.base.Print(l.line(level, msg, fields))
}

func (l *Logger) line(level, msg string, fields map[string]any) string {
	m := make(map[string]any, 3+len(fields))
	for k, v := range fields {
		m[k] = v
	}
	m["ts"] = l.now().UTC().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg
	b, err := json.Marshal(m)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"ts": m["ts"], "level": level, "msg": msg, "log_error": err.Error()})
	}
	return string(b)
}

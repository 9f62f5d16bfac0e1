package log

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sort"
	"strings"
	"time"
)

// TextFormatter renders entries as a single human-readable line.
type TextFormatter struct {
	// TimestampFormat overrides the default RFC3339 timestamp layout.
	TimestampFormat string
}

// Format renders the entry as "TIME LEVEL message key=value ...".
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(layout))
	b.WriteByte(' ')
	b.WriteString(entry.Level.String())
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, key := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&b, " %s=%v", key, entry.Fields[key])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct{}

// Format renders the entry as a JSON object with ts, level, msg, and the
// entry fields inlined at the top level.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(entry.Fields)+3)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}
	obj["ts"] = entry.Timestamp.Format(time.RFC3339Nano)
	obj["level"] = strings.ToLower(entry.Level.String())
	obj["msg"] = entry.Message

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ConsoleOutput writes formatted entries to a writer, stderr by default.
type ConsoleOutput struct {
	Writer io.Writer
}

// NewConsoleOutput returns an output writing to stderr.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{Writer: os.Stderr}
}

// Write writes the formatted entry.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	_, err := w.Write(formatted)
	return err
}

// Close is a no-op for console output.
func (o *ConsoleOutput) Close() error { return nil }

// RedirectStdLog routes the standard library's global logger through the
// given Logger at info level.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{logger: logger})
}

type stdLogWriter struct {
	logger Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

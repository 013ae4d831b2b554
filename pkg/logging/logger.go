package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// NewLogger creates a logger writing entries at or above level in the given format
func NewLogger(writer io.Writer, format Format, level Level) *StructuredLogger {
	return &StructuredLogger{
		writer: writer,
		format: format,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// NewJSONLogger creates a JSON-lines logger
func NewJSONLogger(writer io.Writer, level Level) *StructuredLogger {
	return NewLogger(writer, FormatJSON, level)
}

// NewTextLogger creates a human-readable logger for interactive use
func NewTextLogger(writer io.Writer, level Level) *StructuredLogger {
	return NewLogger(writer, FormatText, level)
}

func (l *StructuredLogger) log(level Level, msg string, fields ...Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	all := make([]Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)

	if l.format == FormatText {
		l.writeText(level, msg, all)
		return
	}
	l.writeJSON(level, msg, all)
}

func (l *StructuredLogger) writeJSON(level Level, msg string, fields []Field) {
	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if len(fields) > 0 {
		entry.Fields = make(map[string]any, len(fields))
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.writer, "[ERROR] Failed to marshal log entry: %v\n", err)
		return
	}
	l.writer.Write(append(data, '\n'))
}

// Later fields with the same key override earlier ones, as in JSON output.
func (l *StructuredLogger) writeText(level Level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	seen := make(map[string]bool, len(fields))
	deduped := make([]Field, 0, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		if seen[fields[i].Key] {
			continue
		}
		seen[fields[i].Key] = true
		deduped = append(deduped, fields[i])
	}
	slices.Reverse(deduped)

	for _, f := range deduped {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')
	io.WriteString(l.writer, b.String())
}

func (l *StructuredLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }
func (l *StructuredLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields...) }
func (l *StructuredLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields...) }
func (l *StructuredLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

// With creates a child logger sharing the writer and its lock
func (l *StructuredLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &StructuredLogger{
		writer: l.writer,
		format: l.format,
		level:  l.level,
		fields: append(slices.Clone(l.fields), fields...),
		mu:     l.mu,
	}
}

// SetLevel sets the minimum log level
func (l *StructuredLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *StructuredLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

var (
	defaultLogger Logger
	defaultMu     sync.RWMutex
	once          sync.Once
)

// DefaultLogger returns the process-wide logger. It writes JSON to stderr at
// the level named by LOG_LEVEL.
func DefaultLogger() Logger {
	once.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		if defaultLogger == nil {
			defaultLogger = NewJSONLogger(os.Stderr, ParseLevel(os.Getenv("LOG_LEVEL")))
		}
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide logger
func SetDefaultLogger(logger Logger) {
	once.Do(func() {})
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// Elapsed returns the time since the timer started
func (t *TimedOperation) Elapsed() time.Duration {
	return time.Since(t.start)
}

// End logs the operation at Debug with its latency and returns the latency
func (t *TimedOperation) End(fields ...Field) time.Duration {
	elapsed := time.Since(t.start)
	all := append(slices.Clone(t.fields), fields...)
	t.logger.Debug(t.msg, append(all, Latency(elapsed))...)
	return elapsed
}

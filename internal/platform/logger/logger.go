package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Writer por defecto es os.Stdout.
	Writer io.Writer
}

// sink es compartido por todos los loggers derivados con With.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

type lineLogger struct {
	out    *sink
	level  Level
	format Format
	now    func() time.Time
	base   map[string]any
}

func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &lineLogger{
		out:    &sink{w: w},
		level:  opts.Level,
		format: format,
		now:    time.Now,
		base:   base,
	}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo. Útil en tests.
func Nop() Logger {
	return New(Options{Level: Error + 1, Writer: io.Discard})
}

func (l *lineLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	cp := *l
	cp.base = merge(l.base, fields)
	return &cp
}

func (l *lineLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *lineLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *lineLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *lineLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *lineLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = l.now().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	for k, v := range entry {
		if err, ok := v.(error); ok {
			entry[k] = err.Error()
		}
	}

	var line string
	switch l.format {
	case FormatJSON:
		b, _ := json.Marshal(entry)
		line = string(b)
	default:
		line = formatText(entry)
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	_, _ = io.WriteString(l.out.w, line+"\n")
}

func merge(base, fields map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(fields)+3)
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// formatText ordena las keys para que la salida sea estable.
func formatText(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}

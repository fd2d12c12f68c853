package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Writer: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestLogger_TextIsSortedAndIncludesBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Writer: &buf, App: "events-calendar"}).
		With(map[string]any{"component": "router"})

	l.Debug("hello", map[string]any{"b": 2, "a": 1, " ": "ignored"})

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "a=1 app=events-calendar b=2 component=router level=debug msg=hello ts=") {
		t.Fatalf("unexpected text line %q", line)
	}
}

func TestLogger_JSONRendersErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, Writer: &buf})

	l.Error("boom", map[string]any{"err": errors.New("disk full")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["err"] != "disk full" || entry["level"] != "error" || entry["msg"] != "boom" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestLogger_WithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Writer: &buf})
	_ = parent.With(map[string]any{"request_id": "r-1"})

	parent.Info("plain", nil)
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("child fields leaked into parent: %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"debug": Debug, " WARN ": Warn, "warning": Warn, "error": Error, "": Info, "bogus": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("xml") != FormatText {
		t.Fatalf("unexpected ParseFormat result")
	}
}

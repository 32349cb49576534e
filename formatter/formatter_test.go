package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/conlog/conlog/core"
	"github.com/conlog/conlog/inspect"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected '[INFO]' in output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestTextFormatter_WithValues(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:  time.Now(),
		Level: core.InfoLevel,
		Values: []interface{}{
			"listening on",
			map[string]interface{}{"port": 8080},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "listening on") {
		t.Errorf("Expected 'listening on' in output, got: %s", output)
	}
	if !strings.Contains(output, "{port: 8080}") {
		t.Errorf("Expected inspected map in output, got: %s", output)
	}
}

func TestTextFormatter_BoundsValues(t *testing.T) {
	// The formatter renders values through its inspector, so a cyclic
	// value arrives at the sink as a finite line.
	f := NewTextFormatter(Config{})

	m := map[string]interface{}{}
	m["self"] = m
	entry := &core.Entry{
		Time:   time.Now(),
		Level:  core.WarnLevel,
		Values: []interface{}{m},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(result), "{self: [Circular Reference]}") {
		t.Errorf("Expected circular sentinel in output, got: %s", result)
	}
}

func TestTextFormatter_WithCaller(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:  time.Now(),
		Level: core.InfoLevel,
		Values: []interface{}{
			"test",
		},
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "file.go:123") {
		t.Errorf("Expected caller info in output, got: %s", output)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:   time.Now(),
		Level:  core.ErrorLevel,
		Values: []interface{}{"direct write"},
	}

	var buf bytes.Buffer
	if err := f.FormatTo(entry, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "direct write") {
		t.Errorf("Expected 'direct write' in output, got: %s", buf.String())
	}
}

func TestTextFormatter_CustomInspector(t *testing.T) {
	opts := inspect.DefaultOptions()
	opts.MaxStringLength = 4
	f := NewTextFormatter(Config{Inspector: inspect.New(opts)})

	entry := &core.Entry{
		Time:   time.Now(),
		Level:  core.InfoLevel,
		Values: []interface{}{"abcdefgh"},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(result), "abcd...[truncated, 8 chars total]") {
		t.Errorf("Expected truncated value in output, got: %s", result)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "INFO" {
		t.Errorf("Expected level 'INFO', got: %v", data["level"])
	}
	if data["message"] != "test message" {
		t.Errorf("Expected message 'test message', got: %v", data["message"])
	}
}

func TestJSONFormatter_WithValues(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:  time.Now(),
		Level: core.WarnLevel,
		Values: []interface{}{
			42,
			map[string]interface{}{"a": 1},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	values, ok := data["values"].([]interface{})
	if !ok {
		t.Fatalf("Expected values array, got: %T", data["values"])
	}
	if len(values) != 2 {
		t.Fatalf("Expected 2 values, got: %d", len(values))
	}
	if values[0] != "42" {
		t.Errorf("Expected rendered '42', got: %v", values[0])
	}
	if values[1] != "{a: 1}" {
		t.Errorf("Expected rendered map, got: %v", values[1])
	}
}

func TestJSONFormatter_EscapesValues(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:   time.Now(),
		Level:  core.InfoLevel,
		Values: []interface{}{"line1\nline2 \"quoted\""},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	values := data["values"].([]interface{})
	if values[0] != "line1\nline2 \"quoted\"" {
		t.Errorf("Escaping corrupted the value: %q", values[0])
	}
}

func TestJSONFormatter_WithCaller(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.ErrorLevel,
		Message: "fail",
		Caller: core.CallerInfo{
			ShortFile: "svc.go",
			Line:      7,
			Function:  "pkg.fn",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	caller, ok := data["caller"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected caller object, got: %T", data["caller"])
	}
	if caller["file"] != "svc.go" {
		t.Errorf("Expected caller file 'svc.go', got: %v", caller["file"])
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:   time.Now(),
		Level:  core.InfoLevel,
		Values: []interface{}{"request done", map[string]interface{}{"status": 200}},
	}
	var buf bytes.Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}

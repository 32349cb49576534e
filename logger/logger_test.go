package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conlog/conlog/core"
	"github.com/conlog/conlog/formatter"
	"github.com/conlog/conlog/handler"
)

func newTestLogger(level core.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	l := NewBuilder().
		WithHandler(h).
		WithLevel(level).
		Build()
	return l, &buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newTestLogger(core.WarnLevel)
	defer l.Close()

	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	output := buf.String()
	if strings.Contains(output, "debug msg") || strings.Contains(output, "info msg") {
		t.Errorf("Messages below level leaked: %s", output)
	}
	if !strings.Contains(output, "warn msg") {
		t.Errorf("Expected 'warn msg' in output, got: %s", output)
	}
	if !strings.Contains(output, "error msg") {
		t.Errorf("Expected 'error msg' in output, got: %s", output)
	}
}

func TestLogger_Values(t *testing.T) {
	l, buf := newTestLogger(core.DebugLevel)
	defer l.Close()

	l.Info("state", map[string]interface{}{"a": 1, "b": []int{1, 2, 3}})

	output := buf.String()
	if !strings.Contains(output, "state {a: 1, b: [1, 2, 3]}") {
		t.Errorf("Expected inspected values in output, got: %s", output)
	}
}

func TestLogger_CyclicValueIsBounded(t *testing.T) {
	l, buf := newTestLogger(core.DebugLevel)
	defer l.Close()

	m := map[string]interface{}{}
	m["self"] = m
	l.Info(m)

	output := buf.String()
	if !strings.Contains(output, "{self: [Circular Reference]}") {
		t.Errorf("Expected circular sentinel, got: %s", output)
	}
}

func TestLogger_With(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	defer l.Close()

	child := l.With("worker=7")
	child.Info("started")

	output := buf.String()
	if !strings.Contains(output, "worker=7") {
		t.Errorf("Expected context value in output, got: %s", output)
	}
	if !strings.Contains(output, "started") {
		t.Errorf("Expected message in output, got: %s", output)
	}

	buf.Reset()
	l.Info("bare")
	if strings.Contains(buf.String(), "worker=7") {
		t.Error("With must not mutate the parent logger")
	}
}

func TestLogger_Formatted(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	defer l.Close()

	l.Infof("answer is %d", 42)

	if !strings.Contains(buf.String(), "answer is 42") {
		t.Errorf("Expected formatted message, got: %s", buf.String())
	}
}

func TestLogger_Log(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	defer l.Close()

	l.Log(core.ErrorLevel, "direct")
	l.Log(core.DebugLevel, "filtered")

	output := buf.String()
	if !strings.Contains(output, "direct") {
		t.Errorf("Expected 'direct' in output, got: %s", output)
	}
	if strings.Contains(output, "filtered") {
		t.Errorf("Debug should be filtered: %s", output)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{IncludeCaller: true}),
	})
	l := NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		WithCaller(true).
		Build()
	defer l.Close()

	l.Info("located")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("Expected caller file in output, got: %s", buf.String())
	}
}

func TestLogger_Fatal(t *testing.T) {
	exitCode := -1
	orig := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = orig }()

	l, buf := newTestLogger(core.InfoLevel)
	l.Fatal("giving up")

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "giving up") {
		t.Errorf("Expected fatal message in output, got: %s", buf.String())
	}
}

func TestLogger_Panic(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	defer l.Close()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected Panic to panic")
		}
		if !strings.Contains(buf.String(), "collapsing") {
			t.Errorf("Expected panic message in output, got: %s", buf.String())
		}
	}()
	l.Panic("collapsing")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Warning", WarnLevel},
		{"error", ErrorLevel},
		{"FATAL", FatalLevel},
		{"panic", PanicLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	old := Default()
	SetDefault(l)
	defer SetDefault(old)

	Info("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("Expected message via default logger, got: %s", buf.String())
	}
}

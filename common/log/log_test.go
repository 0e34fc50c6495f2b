package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.DebugLevel,
		"DEBUG": log.DebugLevel,
		"warn":  log.WarnLevel,
		"error": log.ErrorLevel,
		"info":  log.InfoLevel,
		"":      log.InfoLevel,
		"trace": log.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetLevelBeforeInit(t *testing.T) {
	SetLevel("error")
	if got := logger.GetLevel(); got != log.ErrorLevel {
		t.Fatalf("level expected error, got %v", got)
	}
	// 默认 logger 不应为 nil
	Debug("silent %d", 1)
	SetLevel("info")
}

func TestCallerSkipsWrapper(t *testing.T) {
	prev := logger
	defer func() { logger = prev }()

	var buf bytes.Buffer
	logger = newLogger(&buf, "test")
	Info("hello %s", "caller")
	Warn("plain")

	out := buf.String()
	if strings.Contains(out, "log/log.go") {
		t.Fatalf("caller points at the wrapper: %s", out)
	}
	if strings.Count(out, "log_test.go") != 2 {
		t.Fatalf("expected both lines to report log_test.go, got: %s", out)
	}
}

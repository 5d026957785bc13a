package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Debug("hidden")
	l.Info("roadmap generated", "modules", 5)
	l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "roadmap generated") || !strings.Contains(out, `"modules": 5`) {
		t.Errorf("missing info line or field: %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "careerpath.log")
	var console bytes.Buffer
	l, err := New(Options{Level: "debug", File: path, Console: &console})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.With("user", "u1").Warn("history entry missing", "module", "2")
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"history entry missing"`, `"user":"u1"`, `"module":"2"`, `"level":"WARN"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log file missing %s: %s", want, line)
		}
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	l := Nop()
	l.Info("x", "k", "v")
	l.With("a", 1).Error("y")
	l.Sync()
}

package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLog_WritesAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	if !Enabled() {
		t.Fatal("Enabled() = false after Init")
	}
	Log("pass %d: %s", 3, "arranged")
	Logf("elements %d", 12)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], "pass 3: arranged") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[") || !strings.HasSuffix(lines[1], "elements 12") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestLog_NoopWhenClosed(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Must not create a default log file.
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	Log("dropped")

	if _, err := os.Stat(filepath.Join(dir, "gotable-debug.log")); !os.IsNotExist(err) {
		t.Errorf("expected no log file, stat error = %v", err)
	}
}

func TestLog_BadEnvPathReportedOnce(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, filepath.Join(blocker, "debug.log"))

	var out bytes.Buffer
	mu.Lock()
	envOnce, envErr, errOut = sync.Once{}, nil, &out
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		envOnce, envErr, errOut = sync.Once{}, nil, os.Stderr
		mu.Unlock()
	})

	Log("first")
	Log("second")

	if Enabled() {
		t.Error("Enabled() = true with an unopenable path")
	}
	if err := EnvError(); err == nil || !strings.Contains(err.Error(), EnvVar) {
		t.Errorf("EnvError() = %v, want error naming %s", err, EnvVar)
	}
	if n := strings.Count(out.String(), "debug logging disabled"); n != 1 {
		t.Errorf("reported %d times, want 1: %q", n, out.String())
	}
}

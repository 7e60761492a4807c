package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "GOTABLE_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	envOnce sync.Once
	envErr  error

	// errOut receives the one-time report of a bad EnvVar path.
	errOut io.Writer = os.Stderr
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "gotable-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "gotable-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Enabled reports whether log output currently goes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	fromEnvLocked()
	return logFile != nil
}

// fromEnvLocked opens the file named by EnvVar once. Caller must hold mu.
func fromEnvLocked() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" && logFile == nil {
			if err := initLocked(path); err != nil {
				envErr = fmt.Errorf("%s=%s: %w", EnvVar, path, err)
				fmt.Fprintf(errOut, "gotable: debug logging disabled: %v\n", envErr)
			}
		}
	})
}

// EnvError returns the error from opening the file named by EnvVar, if any.
func EnvError() error {
	mu.Lock()
	defer mu.Unlock()
	fromEnvLocked()
	return envErr
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	fromEnvLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

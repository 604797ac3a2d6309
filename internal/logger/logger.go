// Package logger provides the process-wide diagnostic log for ecourts.
//
// Retrieval steps, fallbacks and config reloads are traced at debug, info
// and warn level and only printed in verbose mode (--verbose or
// logging.verbose). Errors are always printed. Output goes to stderr so it
// never mixes with command results on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var prefixes = [...]string{
	levelDebug: "[DEBUG] ",
	levelInfo:  "[INFO] ",
	levelWarn:  "[WARN] ",
	levelError: "[ERROR] ",
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug, info and warn output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects the log. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Writer returns an io.Writer that logs each write at debug level.
// It lets libraries with their own printf hooks share the verbose log.
func Writer() io.Writer {
	return debugWriter{}
}

type debugWriter struct{}

func (debugWriter) Write(p []byte) (int, error) {
	msg := string(p)
	for len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	logf(levelDebug, "%s", msg)
	return len(p), nil
}

func logf(l level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < levelError && !verbose {
		return
	}
	fmt.Fprintf(output, prefixes[l]+format+"\n", args...)
}

// Debug traces a retrieval step.
func Debug(format string, args ...any) { logf(levelDebug, format, args...) }

// Info reports a notable event such as a completed live retrieval.
func Info(format string, args ...any) { logf(levelInfo, format, args...) }

// Warn reports a recovered problem, for example a fallback to synthetic data.
func Warn(format string, args ...any) { logf(levelWarn, format, args...) }

// Error reports a failure the user must see. It ignores verbose mode.
func Error(format string, args ...any) { logf(levelError, format, args...) }

// Section prints a header separating one retrieval from the next.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

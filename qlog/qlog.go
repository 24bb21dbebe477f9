// Package qlog provides the verbose diagnostic log used by wavefunction
// summaries. When verbose mode is enabled, section banners and messages
// are printed to stderr (or to any writer installed with SetOutput);
// warnings print regardless of the verbose gate. The package-level state
// is guarded by a lock and safe for concurrent use.
package qlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()

	return verbose
}

// SetOutput redirects log output. Defaults to os.Stderr. Useful for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Section prints a banner introducing a named block of diagnostic output
// if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Debug prints a low-level diagnostic message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Blank prints an empty separator line if verbose mode is enabled.
func Blank() {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintln(output)
	}
}

// Warn prints a warning. Warnings bypass the verbose gate.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}

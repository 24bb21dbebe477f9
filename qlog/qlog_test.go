package qlog_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qchemlab/gowfn/qlog"
)

// capture points the log at a fresh buffer and restores the defaults when
// the test finishes. Tests in this package must not run in parallel: the
// log state is package-global.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	qlog.SetOutput(&buf)
	t.Cleanup(func() {
		qlog.SetOutput(os.Stderr)
		qlog.SetVerbose(false)
	})

	return &buf
}

// TestSection_VerboseGate verifies that Section is silent until verbose
// mode is enabled and prints a banner afterwards.
func TestSection_VerboseGate(t *testing.T) {
	buf := capture(t)

	qlog.SetVerbose(false)
	qlog.Section("WFN")
	assert.Empty(t, buf.String(), "Section must be silent with verbose off")

	qlog.SetVerbose(true)
	qlog.Section("WFN")
	assert.Equal(t, "\n=== WFN ===\n", buf.String(), "Section must print a banner with verbose on")
}

// TestInfoDebugBlank_Format checks the message prefixes and the gate.
func TestInfoDebugBlank_Format(t *testing.T) {
	buf := capture(t)

	qlog.SetVerbose(true)
	qlog.Info("number of electrons: %d", 10)
	qlog.Debug("channel %s occupies %d orbitals", "alpha", 5)
	qlog.Blank()

	want := "[INFO] number of electrons: 10\n" +
		"[DEBUG] channel alpha occupies 5 orbitals\n" +
		"\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	qlog.SetVerbose(false)
	qlog.Info("hidden")
	qlog.Debug("hidden")
	qlog.Blank()
	assert.Empty(t, buf.String(), "Info/Debug/Blank must be silent with verbose off")
}

// TestWarn_BypassesGate verifies that warnings print even with verbose off.
func TestWarn_BypassesGate(t *testing.T) {
	buf := capture(t)

	qlog.SetVerbose(false)
	qlog.Warn("orbital %d deviates from unit norm", 3)
	assert.Equal(t, "[WARN] orbital 3 deviates from unit norm\n", buf.String())
}

// TestIsVerbose tracks the setter.
func TestIsVerbose(t *testing.T) {
	capture(t)

	qlog.SetVerbose(true)
	assert.True(t, qlog.IsVerbose())
	qlog.SetVerbose(false)
	assert.False(t, qlog.IsVerbose())
}

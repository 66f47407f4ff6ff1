package util

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics(level Level) (*Diagnostics, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewDiagnosticsWithWriters(level, &out, &errOut), &out, &errOut
}

func TestDiagnostics(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	t.Run("Error Goes To Error Writer", func(t *testing.T) {
		d, out, errOut := newTestDiagnostics(LevelError)
		d.Error("bad %s", "input")

		assert.Equal(t, "[ERROR] bad input\n", errOut.String())
		assert.Empty(t, out.String())
	})

	t.Run("Level Filtering", func(t *testing.T) {
		d, out, _ := newTestDiagnostics(LevelWarn)
		d.Warn("careful")
		d.Info("hidden")
		d.Verbose("hidden")
		d.Println("hidden")

		assert.Equal(t, "[WARN] careful\n", out.String())
		assert.Equal(t, LevelWarn, d.Level())
	})

	t.Run("Verbose", func(t *testing.T) {
		d, out, _ := newTestDiagnostics(LevelVerbose)
		d.Info("starting")
		d.Verbose("detail %d", 1)
		d.Println("out/plan.yaml")

		assert.Equal(t, "[INFO] starting\n[VERBOSE] detail 1\nout/plan.yaml\n", out.String())
	})

	t.Run("Silent", func(t *testing.T) {
		d, out, errOut := newTestDiagnostics(LevelSilent)
		d.Error("nothing")
		d.Warn("nothing")

		assert.Empty(t, out.String())
		assert.Empty(t, errOut.String())
	})
}

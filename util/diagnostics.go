package util

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Level controls how much diagnostic output is written.
type Level int

// Diagnostic levels, from quietest to noisiest.
const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
)

// Diagnostics writes leveled, optionally colored messages for the command line.
// Errors go to the error writer; everything else goes to the output writer.
type Diagnostics struct {
	level  Level
	out    io.Writer
	errOut io.Writer

	errorTag   *color.Color
	warnTag    *color.Color
	infoTag    *color.Color
	verboseTag *color.Color
}

// NewDiagnostics creates diagnostics writing to stdout and stderr.
func NewDiagnostics(level Level) *Diagnostics {
	return NewDiagnosticsWithWriters(level, os.Stdout, os.Stderr)
}

// NewDiagnosticsWithWriters creates diagnostics with explicit writers. Color follows
// the color package's terminal detection, which also honors NO_COLOR.
func NewDiagnosticsWithWriters(level Level, out, errOut io.Writer) *Diagnostics {
	return &Diagnostics{
		level:      level,
		out:        out,
		errOut:     errOut,
		errorTag:   color.New(color.FgRed, color.Bold),
		warnTag:    color.New(color.FgYellow),
		infoTag:    color.New(color.FgBlue),
		verboseTag: color.New(color.FgHiBlack),
	}
}

// Level returns the configured level.
func (d *Diagnostics) Level() Level {
	return d.level
}

// Error writes an error message.
func (d *Diagnostics) Error(format string, args ...any) {
	d.write(LevelError, d.errOut, d.errorTag, "ERROR", format, args...)
}

// Warn writes a warning.
func (d *Diagnostics) Warn(format string, args ...any) {
	d.write(LevelWarn, d.out, d.warnTag, "WARN", format, args...)
}

// Info writes an informational message.
func (d *Diagnostics) Info(format string, args ...any) {
	d.write(LevelInfo, d.out, d.infoTag, "INFO", format, args...)
}

// Verbose writes a message shown only in verbose mode.
func (d *Diagnostics) Verbose(format string, args ...any) {
	d.write(LevelVerbose, d.out, d.verboseTag, "VERBOSE", format, args...)
}

// Println writes msg without a level tag when the level is at least Verbose.
func (d *Diagnostics) Println(msg string) {
	if d.level >= LevelVerbose {
		fmt.Fprintln(d.out, msg)
	}
}

func (d *Diagnostics) write(level Level, w io.Writer, tag *color.Color, name, format string, args ...any) {
	if d.level < level {
		return
	}
	fmt.Fprintf(w, "%s %s\n", tag.Sprintf("[%s]", name), fmt.Sprintf(format, args...))
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// PanicExitCode is the process exit code used by Panic.
const PanicExitCode = 112

// Logger is a diagnostic logger with an optional line header and output
// redirection. Info and Warn are thread-safe; Panic emits to the error
// sink and terminates the process.
//
// Logging here is for diagnostics and fatal termination only; the
// primitives in this package never log on their own.
type Logger struct {
	mu     sync.Mutex
	header string
	out    io.Writer
	errOut io.Writer
}

// NewLogger creates a logger writing to stdout/stderr.
func NewLogger(header string) *Logger {
	return &Logger{header: header, out: os.Stdout, errOut: os.Stderr}
}

// NewLoggerWriter creates a logger writing all output to w.
func NewLoggerWriter(header string, w io.Writer) *Logger {
	return &Logger{header: header, out: w, errOut: w}
}

// NewLoggerFile creates a logger appending all output to the named file.
// Failure to open the file is an unrecoverable environment failure and
// terminates the process.
func NewLoggerFile(header, path string) *Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		Panic("could not open log file %s: %v", path, err)
	}
	return &Logger{header: header, out: f, errOut: f}
}

// Info logs a formatted informational line.
func (l *Logger) Info(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s%s\n", l.header, fmt.Sprintf(format, args...))
}

// Warn logs a formatted warning line to the error sink.
func (l *Logger) Warn(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "%sWARN: %s\n", l.header, fmt.Sprintf(format, args...))
}

// Panic logs a formatted fatal line to the error sink and terminates the
// process with PanicExitCode. It never returns.
func (l *Logger) Panic(format string, args ...any) {
	fmt.Fprintf(l.errOut, "%sPanic: %s\n", l.header, fmt.Sprintf(format, args...))
	os.Exit(PanicExitCode)
}

// std is the default headerless logger on stdout/stderr.
var std = NewLogger("")

// Info logs to the default logger.
func Info(format string, args ...any) {
	std.Info(format, args...)
}

// Warn logs to the default logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Panic logs to the default logger and terminates the process with
// PanicExitCode. It never returns.
func Panic(format string, args ...any) {
	std.Panic(format, args...)
}

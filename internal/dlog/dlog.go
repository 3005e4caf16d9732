// Package dlog provides the GHier logging facade. It keeps the
// positional argument call style used throughout the code base
// (dlog.Common.Warn("Cannot read osm id. Line:", line)) on top of a
// zap core, so log output stays structured and cheap while call sites
// stay close to plain sentences.
package dlog

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Common is the process wide logger. It defaults to info level on
// stderr and is reconfigured by Setup once the configuration is known.
var Common = New("info", "stderr")

// Logger writes leveled log lines. Arguments are joined space
// separated into one message, matching the positional call style.
type Logger struct {
	su *zap.SugaredLogger
}

// New returns a logger writing to the named output ("stderr", "stdout"
// or "none") at the given level. Unknown levels fall back to info.
func New(level, output string) *Logger {
	if output == "none" {
		return &Logger{su: zap.NewNop().Sugar()}
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	ws := zapcore.Lock(os.Stderr)
	if output == "stdout" {
		ws = zapcore.Lock(os.Stdout)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), ws, lvl)
	return &Logger{su: zap.New(core).Sugar()}
}

// Setup replaces the Common logger. Called once by the command line
// tools after configuration parsing.
func Setup(level, output string) {
	Common = New(level, output)
}

// Mute silences the Common logger. Used by tests.
func Mute() {
	Common = &Logger{su: zap.NewNop().Sugar()}
}

// Debug logs a debug level message.
func (l *Logger) Debug(args ...interface{}) {
	l.su.Debug(sprint(args...))
}

// Info logs an info level message.
func (l *Logger) Info(args ...interface{}) {
	l.su.Info(sprint(args...))
}

// Warn logs a warning level message.
func (l *Logger) Warn(args ...interface{}) {
	l.su.Warn(sprint(args...))
}

// Error logs an error level message.
func (l *Logger) Error(args ...interface{}) {
	l.su.Error(sprint(args...))
}

// Sync flushes buffered log output. Safe to call on exit paths.
func (l *Logger) Sync() {
	_ = l.su.Sync()
}

// sprint joins arguments space separated. fmt.Sprintln inserts the
// separator between every operand pair, unlike fmt.Sprint.
func sprint(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

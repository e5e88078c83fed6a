/*
DESCRIPTION
  xlog.go provides the leveled logging interface used throughout pilot.

LICENSE
  See LICENSE at the repository root.
*/

// Package xlog provides a small leveled logging interface, matching the
// call shape revid's Logger historically used (Debug/Info/Warning/Error/Fatal
// with trailing key-value pairs), backed by zap and a lumberjack writer.
package xlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Severity levels, ordered least to most severe.
const (
	Debug int8 = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is the logging interface consumed by every package in this module.
// Nothing outside this package constructs one directly except cmd/pilot.
type Logger interface {
	SetLevel(int8)
	Debug(msg string, params ...interface{})
	Info(msg string, params ...interface{})
	Warning(msg string, params ...interface{})
	Error(msg string, params ...interface{})
	Fatal(msg string, params ...interface{})
}

// zapLogger adapts a *zap.SugaredLogger to the Logger interface, and allows
// the minimum enabled level to be changed at runtime via an atomic level.
type zapLogger struct {
	level *zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// New returns a Logger that appends JSON-encoded log lines to path (created
// if necessary), never rotating — the spec requires a single append-only
// log.txt for the process lifetime. lumberjack treats a zero MaxSize as
// 100 MB, so MaxSize is set to 1<<30 MB, a size the file never reaches.
func New(path string, level int8) Logger {
	w := &lumberjack.Logger{Filename: path, MaxSize: 1 << 30}

	al := zap.NewAtomicLevelAt(toZapLevel(level))
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), al)
	base := zap.New(core, zap.AddCaller())

	return &zapLogger{level: &al, sugar: base.Sugar()}
}

func toZapLevel(l int8) zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

func (z *zapLogger) SetLevel(l int8) { z.level.SetLevel(toZapLevel(l)) }

func (z *zapLogger) Debug(msg string, params ...interface{})   { z.sugar.Debugw(msg, params...) }
func (z *zapLogger) Info(msg string, params ...interface{})    { z.sugar.Infow(msg, params...) }
func (z *zapLogger) Warning(msg string, params ...interface{}) { z.sugar.Warnw(msg, params...) }
func (z *zapLogger) Error(msg string, params ...interface{})   { z.sugar.Errorw(msg, params...) }

// Fatal logs at error severity and panics rather than calling os.Exit, so
// that pilot's cooperative-shutdown discipline (set exit-requested, run
// cleanup) remains in control of process termination. Callers on fatal init
// paths are expected to recover at the top of main.
func (z *zapLogger) Fatal(msg string, params ...interface{}) {
	z.sugar.Errorw(msg, params...)
	panic(fmt.Sprintf("fatal: %s", msg))
}

// Package logger wraps go.uber.org/zap into the small helper the rest of
// this module logs through.
package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around a *zap.Logger. The zero value is not
// usable; construct one with New or Nop.
type Logger struct {
	log *zap.Logger
}

// New builds a console-encoded, colorized zap logger writing to stderr.
func New() *Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     shortTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), zap.DebugLevel)
	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{log: log}
}

// Nop returns a Logger that discards everything, for callers that don't
// want construction-time logging.
func Nop() *Logger {
	return &Logger{log: zap.NewNop()}
}

func shortTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Info(msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Debug(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Error(msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Fatal(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.log.Sync()
}

package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type zapLogger struct {
	l *zap.Logger
}

func (l zapLogger) write(level zapcore.Level, msg string, obj any) {
	if ce := l.l.Check(level, msg); ce != nil {
		if obj == nil {
			ce.Write()
			return
		}
		ce.Write(zap.Any("obj", obj))
	}
}

// New builds a console logger writing to w at the given level
// (debug, info, warn, error).
func New(w io.Writer, level string) (Logger, error) {
	if w == nil {
		return NopLogger{}, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zapLogger{l: zap.New(core)}, nil
}

// NewWriterLogger builds a debug-level logger that writes to an io.Writer.
func NewWriterLogger(w io.Writer) Logger {
	l, err := New(w, "debug")
	if err != nil {
		return NopLogger{}
	}
	return l
}

func (l zapLogger) Info(msg string, obj any)  { l.write(zapcore.InfoLevel, msg, obj) }
func (l zapLogger) Warn(msg string, obj any)  { l.write(zapcore.WarnLevel, msg, obj) }
func (l zapLogger) Debug(msg string, obj any) { l.write(zapcore.DebugLevel, msg, obj) }
func (l zapLogger) Error(msg string, obj any) { l.write(zapcore.ErrorLevel, msg, obj) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Debugf is a compatibility helper for format-style debug logging.
func Debugf(enabled bool, logger Logger, format string, args ...any) {
	Debug(enabled, logger, fmt.Sprintf(format, args...), nil)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}

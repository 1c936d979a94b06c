// Package logger wires a zap logger writing to a rotated log file.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the log file and its rotation.
type Config struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var log = zap.NewNop().Sugar()

// L returns the process logger. Before Init it is a no-op logger.
func L() *zap.SugaredLogger {
	return log
}

// Init points the process logger at a lumberjack-rotated file.
func Init(c Config, level zapcore.Level) error {
	if c.File == "" {
		return fmt.Errorf("init logger: empty log file path")
	}
	lj := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   false,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level)
	log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// Set replaces the process logger. Tests use it with zaptest/observer.
func Set(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	log = l
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Sync()
}

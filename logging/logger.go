// Package logging builds the process logger and adapts it to the Printf-style loggers used
// for per-endpoint debug output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Verbose lowers the console level from warnings to debug messages.
	Verbose bool
	// File, if set, also writes every entry as JSON to a rotating log file.
	File string
	// Console is where human-readable entries go; defaults to os.Stderr.
	Console io.Writer
}

// NewLogger creates the process logger. The returned close function flushes the logger and
// closes the log file, if any.
func NewLogger(opts Options) (*zap.Logger, func(), error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	level := zap.WarnLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), level),
	}

	var file *lumberjack.Logger
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.TimeKey = "ts"
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(file), zap.DebugLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closer := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, closer, nil
}

// PrintfLogger sends Printf-style messages to a zap logger at debug level.
type PrintfLogger struct {
	sugar *zap.SugaredLogger
}

func NewPrintfLogger(logger *zap.Logger) PrintfLogger {
	return PrintfLogger{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (p PrintfLogger) Printf(message string, args ...interface{}) {
	p.sugar.Debugf(message, args...)
}

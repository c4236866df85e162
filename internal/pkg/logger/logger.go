// Package logger builds the application zap logger with file rotation.
package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultDir        = "logs"
	defaultRotateSize = 10 // MB
	defaultRotateKeep = 7
)

// Options controls where and how logs are written.
type Options struct {
	Dir          string
	Level        string
	Development  bool
	RotateSizeMB int
	RotateKeep   int
}

// New builds a zap logger that tees console output and a rotating JSON log
// file. In development mode only the console logger is used.
func New(opts Options) (*zap.Logger, error) {
	level := parseLevel(opts.Level)

	if opts.Development {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		return cfg.Build()
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	rotateSize := opts.RotateSizeMB
	if rotateSize <= 0 {
		rotateSize = defaultRotateSize
	}
	rotateKeep := opts.RotateKeep
	if rotateKeep <= 0 {
		rotateKeep = defaultRotateKeep
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		MessageKey:   "message",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "app.log"),
		MaxSize:    rotateSize,
		MaxBackups: rotateKeep,
		MaxAge:     30,
		Compress:   true,
	})
	console := zapcore.Lock(os.Stdout)

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileWriter, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), console, level),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

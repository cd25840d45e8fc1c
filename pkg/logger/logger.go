package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	File    string `toml:"file" comment:"log file path, rotation handled automatically; empty disables file logging"`
	Level   string `toml:"level" comment:"log level [debug, info, warn, error]"`
	Console bool   `toml:"console" comment:"also log to stderr"`
}

// New builds the process logger. With neither a file nor console logging
// configured it returns a no-op logger so normal command output stays clean.
func New(cfg Config) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	atomicLevel := zap.NewAtomicLevelAt(level)

	encoder := getEncoder()

	var cores []zapcore.Core

	if cfg.File != "" {
		cores = append(cores, zapcore.NewCore(encoder, getLogWriter(cfg.File), atomicLevel))
	}

	if cfg.Console {
		consoleWriter := zapcore.Lock(os.Stderr)
		cores = append(cores, zapcore.NewCore(encoder, consoleWriter, atomicLevel))
	}

	if len(cores) == 0 {
		return zap.NewNop().Sugar()
	}

	core := zapcore.NewTee(cores...)

	logger := zap.New(core, zap.AddCaller()).Sugar()

	return logger
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getLogWriter(filename string) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	return zapcore.AddSync(lumberJackLogger)
}

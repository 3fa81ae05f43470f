package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes to a file because stdout belongs to the TUI. Returns a
// no-op logger when no path is configured.
func newLogger(path string, debug bool) (*zap.SugaredLogger, func(), error) {
	if path == "" {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), level)

	logger := zap.New(core)
	cleanup := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger.Sugar(), cleanup, nil
}

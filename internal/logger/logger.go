package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/sphereworld).
const LogFilePath = "logs/sphereworld.txt"

// timeLayout stamps every entry with local computer time.
const timeLayout = "2006-01-02 15:04:05"

// New returns a logger writing human-readable lines to stderr and JSON lines appended to path
// (LogFilePath when empty). The log directory is created if needed. debug lowers the level to Debug.
func New(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		path = LogFilePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return NewWithSinks(zapcore.Lock(os.Stderr), zapcore.AddSync(f), level(debug)), nil
}

// NewConsole returns a logger writing only to stderr, used when the log file cannot be opened.
func NewConsole(debug bool) *zap.Logger {
	return NewWithSinks(zapcore.Lock(os.Stderr), nil, level(debug))
}

// NewWithSinks tees a console encoder on console and a JSON encoder on file. A nil sink is skipped.
func NewWithSinks(console, file zapcore.WriteSyncer, lvl zapcore.Level) *zap.Logger {
	var cores []zapcore.Core
	if console != nil {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), console, lvl))
	}
	if file != nil {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), file, lvl))
	}
	return zap.New(zapcore.NewTee(cores...))
}

func level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

package graphics

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// traceLevel maps a raylib trace log level to a zap level.
func traceLevel(level int) zapcore.Level {
	switch rl.TraceLogLevel(level) {
	case rl.LogTrace, rl.LogDebug:
		return zapcore.DebugLevel
	case rl.LogWarning:
		return zapcore.WarnLevel
	case rl.LogError:
		return zapcore.ErrorLevel
	case rl.LogFatal:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// routeTraceLog sends raylib's own messages (GL info, shader compile errors) to log.
func routeTraceLog(log *zap.Logger) {
	raylog := log.Named("raylib")
	rl.SetTraceLogCallback(func(level int, text string) {
		if ce := raylog.Check(traceLevel(level), strings.TrimSpace(text)); ce != nil {
			ce.Write()
		}
	})
}

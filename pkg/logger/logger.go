package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a sugared production logger tagged with the service
// name. Falls back to a no-op logger if construction fails, so callers
// never branch on logging availability.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, "info")
}

// NewWithLevel is New with an explicit minimum level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func NewWithLevel(service, level string) *zap.SugaredLogger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parsed)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}

package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

var loggerKey = contextKey{}

// ParseLevel parses a textual log level. It accepts everything
// zapcore.ParseLevel does plus the "warning" alias.
func ParseLevel(level string) (zapcore.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "warning" {
		normalized = "warn"
	}

	parsed, err := zapcore.ParseLevel(normalized)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
	return parsed, nil
}

// New creates a console logger at the given level. Output goes to stderr;
// stdout stays reserved for the command echo.
func New(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.CallerKey = zapcore.OmitKey // Reduce noise
	config.DisableStacktrace = true

	return config.Build()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context.
// If no logger is found, it creates a default info-level logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}

	logger, err := New(zapcore.InfoLevel)
	if err != nil {
		// Last resort - use no-op logger
		return zap.NewNop()
	}
	return logger
}

// SetupContext parses level and returns a context carrying a logger
// configured at that level.
func SetupContext(ctx context.Context, level string) (context.Context, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return ctx, err
	}

	logger, err := New(parsed)
	if err != nil {
		return ctx, fmt.Errorf("failed to create logger: %w", err)
	}

	return WithLogger(ctx, logger), nil
}

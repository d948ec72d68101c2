package logging

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpgo/projection-engine/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. The development profile logs human-readable
// lines with stack traces from warn; production logs JSON to stderr.
func New(settings config.Settings) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(settings.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}

	var cfg zap.Config
	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if settings.Development() {
		cfg = zap.NewDevelopmentConfig()
		opts[0] = zap.AddStacktrace(zap.WarnLevel)
	} else {
		cfg = zap.NewProductionConfig()
		opts = append(opts, zap.Fields(zap.String("PROJECTOR_ENV", settings.Env)))
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}

type contextKey struct{}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && logger != nil {
		return logger
	}
	return zap.NewNop().Sugar()
}

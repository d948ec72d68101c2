package logging

import (
	"context"
	"testing"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// The engines accept a zap sugared logger directly.
var _ calculation.Logger = (*zap.SugaredLogger)(nil)

func TestNew_Levels(t *testing.T) {
	logger, err := New(config.Settings{Env: "prod", LogLevel: "warn"})
	require.NoError(t, err)
	defer logger.Sync() //nolint:errcheck

	core := logger.Desugar().Core()
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.WarnLevel))
}

func TestNew_Development(t *testing.T) {
	logger, err := New(config.Settings{Env: "dev", LogLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.Settings{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core).Sugar()

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Infof("compared %d strategies", 3)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "compared 3 strategies", logs.All()[0].Message)

	assert.NotNil(t, FromContext(context.Background()))
}

func TestEngineLogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := calculation.NewCompoundGrowthEngine()
	engine.SetLogger(zap.New(core).Sugar())

	_, err := engine.Project(domain.InvestmentInputs{
		InitialAmount:       decimal.NewFromInt(1000),
		AnnualReturnPercent: decimal.NewFromInt(5),
		TimeHorizonYears:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessageSnippet("growth projection").Len())
}

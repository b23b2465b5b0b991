package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func swapLog(t *testing.T, l *zap.Logger) {
	t.Helper()
	prev := Log
	Log = l
	t.Cleanup(func() { Log = prev })
}

func TestWithComponent_BuiltBeforeInit(t *testing.T) {
	swapLog(t, zap.NewNop())
	componentLog := WithComponent("price_oracle").With(zap.String("network", "base"))

	core, logs := observer.New(zapcore.InfoLevel)
	Log = zap.New(core)

	componentLog.Info("Route quoted")
	componentLog.Debug("below level")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Route quoted", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "price_oracle", fields["component"])
	assert.Equal(t, "base", fields["network"])
}

func TestWithComponent_NopDropsEntries(t *testing.T) {
	swapLog(t, zap.NewNop())
	assert.False(t, WithComponent("x").Core().Enabled(zapcore.ErrorLevel))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(raw))
		})
	}
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"smart-checker/api/internal/config"
	"smart-checker/api/internal/smart"
)

func TestNewEvaluator_Mock(t *testing.T) {
	cfg := config.Default()
	cfg.MockMode = true

	ev, eng, err := NewEvaluator(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, eng)
	assert.True(t, ev.Mock())

	res, err := ev.Evaluate(context.Background(), "Improve HR.")
	require.NoError(t, err)
	assert.Equal(t, smart.MockResult(), res)
}

func TestNewEvaluator_Providers(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	cfg := config.Default()
	cfg.LLMTimeout = time.Second
	_, eng, err := NewEvaluator(cfg, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "openai", eng.Name())
	assert.Equal(t, "gpt-4.1-mini", eng.GetModel())
	require.Equal(t, 1, logs.FilterMessage("provider key not set; evaluations will fail").Len())

	cfg.Provider = "gemini"
	cfg.Gemini.APIKey = "k"
	_, eng, err = NewEvaluator(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "gemini", eng.Name())
	assert.Equal(t, "gemini-2.5-flash", eng.GetModel())

	cfg.Provider = "claude"
	_, _, err = NewEvaluator(cfg, zap.NewNop())
	assert.Error(t, err)
}

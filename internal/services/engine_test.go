package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/config"
)

func TestNewAnalyzerFromConfig(t *testing.T) {
	cfg := &config.Config{Analyzer: config.AnalyzerConfig{Engine: config.EngineKeyword}}

	analyzer, err := NewAnalyzerFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &KeywordAnalyzer{}, analyzer)

	cfg.Analyzer.Engine = "magic"
	_, err = NewAnalyzerFromConfig(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown analyzer engine")
}

func TestGeminiOptions_CarriesConfig(t *testing.T) {
	opts := geminiOptions(config.GeminiConfig{
		APIKey:            "k",
		Model:             "gemini-2.5-flash",
		EmbedModel:        "text-embedding-004",
		RequestsPerMinute: 12,
		RetryDelay:        250 * time.Millisecond,
	})

	assert.Equal(t, "k", opts.APIKey)
	assert.Equal(t, "gemini-2.5-flash", opts.Model)
	assert.Equal(t, "text-embedding-004", opts.EmbedModel)
	assert.Equal(t, 12, opts.RequestsPerMinute)
	assert.Equal(t, 250*time.Millisecond, opts.RetryDelay)
}

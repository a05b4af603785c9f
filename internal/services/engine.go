package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/resume-matcher/internal/config"
)

// NewAnalyzerFromConfig builds the analyzer named by cfg.Analyzer.Engine.
// For the Gemini engine, guideline retrieval is wired in only when Qdrant is
// configured and reachable; otherwise the analyzer runs without it.
func NewAnalyzerFromConfig(ctx context.Context, cfg *config.Config) (Analyzer, error) {
	switch cfg.Analyzer.Engine {
	case config.EngineKeyword:
		log.Println("✅ Keyword analyzer initialized")
		return NewKeywordAnalyzer(), nil

	case config.EngineGemini:
		gemini, err := NewGeminiService(geminiOptions(cfg.Gemini))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
		}
		log.Println("✅ Gemini AI initialized successfully")

		var guidelines GuidelineStore
		if cfg.Qdrant.Enabled() {
			store, err := NewQdrantGuidelineStore(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
			if err == nil {
				err = store.InitCollection(ctx)
			}
			if err != nil {
				log.Printf("⚠️  Qdrant unavailable, continuing without hiring guidelines: %v\n", err)
			} else {
				guidelines = store
				log.Println("✅ Qdrant initialized successfully")
			}
		}

		return NewGeminiAnalyzer(gemini, guidelines, cfg.Gemini.RetryMaxAttempts), nil

	default:
		return nil, fmt.Errorf("unknown analyzer engine %q", cfg.Analyzer.Engine)
	}
}

func geminiOptions(cfg config.GeminiConfig) GeminiOptions {
	return GeminiOptions{
		APIKey:            cfg.APIKey,
		Model:             cfg.Model,
		EmbedModel:        cfg.EmbedModel,
		RequestsPerMinute: cfg.RequestsPerMinute,
		RetryDelay:        cfg.RetryDelay,
	}
}

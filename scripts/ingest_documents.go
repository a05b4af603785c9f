package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/services"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200
)

// Loads hiring guideline documents into Qdrant so the Gemini analyzer can
// ground its prompts on them. Usage: go run ./scripts [dir]
func main() {
	log.Println("🚀 Starting guideline ingestion...")

	dir := "./reference_docs/guidelines"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()
	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is required for embeddings")
	}
	if !cfg.Qdrant.Enabled() {
		log.Fatal("❌ QDRANT_URL is required")
	}

	ctx := context.Background()

	// Initialize services
	geminiService, err := services.NewGeminiService(services.GeminiOptions{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		EmbedModel:        cfg.Gemini.EmbedModel,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		RetryDelay:        cfg.Gemini.RetryDelay,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	store, err := services.NewQdrantGuidelineStore(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := store.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	extractor := services.NewTextExtractor()
	chunker := services.NewTextChunker()

	var paths []string
	for _, pattern := range []string{"*.pdf", "*.docx", "*.txt", "*.md"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			log.Fatalf("❌ Bad pattern %s: %v", pattern, err)
		}
		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		log.Fatalf("❌ No guideline documents found in %s", dir)
	}

	successCount := 0
	failCount := 0

	for _, path := range paths {
		sourceID := filepath.Base(path)
		log.Printf("\n📄 Processing: %s", sourceID)

		// Extract text
		log.Printf("   📖 Extracting text...")
		content, err := extractor.ExtractFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

		// Re-ingesting replaces the previous chunks of the same file.
		if err := store.DeleteSource(ctx, sourceID); err != nil {
			log.Printf("   ⚠️  Failed to remove previous chunks: %v", err)
		}

		chunks := chunker.ChunkText(content.Text, chunkSize, chunkOverlap)
		log.Printf("   ✂️  Created %d chunks", len(chunks))

		stored := 0
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			if err := store.UpsertChunk(ctx, sourceID, services.GuidelineDocType, chunk, embedding); err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}
			stored++

			if (i+1)%5 == 0 || i == len(chunks)-1 {
				log.Printf("   📊 Progress: %d/%d chunks stored", i+1, len(chunks))
			}
		}

		if stored == 0 {
			log.Printf("   ❌ No chunks stored for %s", sourceID)
			failCount++
			continue
		}

		log.Printf("   ✅ Successfully ingested %s", sourceID)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some documents failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All guidelines ingested successfully!")
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

// GuidelineDocType tags hiring guideline chunks in the vector store.
const GuidelineDocType = "hiring_guideline"

const (
	guidelineLimit = 3
	analysisTemp   = 0.2
)

// GeminiAnalyzer asks Gemini for the match analysis, optionally grounding the
// prompt on hiring guidelines retrieved from Qdrant.
type GeminiAnalyzer struct {
	gemini        GeminiService
	guidelines    GuidelineStore // nil disables retrieval
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewGeminiAnalyzer(gemini GeminiService, guidelines GuidelineStore, maxRetries int) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		gemini:        gemini,
		guidelines:    guidelines,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// llmAnalysis is the JSON shape requested in the prompt. Score is a float so
// that "72.5" style answers still parse.
type llmAnalysis struct {
	MatchScore      *float64 `json:"match_score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	MissingSkills   []string `json:"missing_skills"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// Analyze implements Analyzer.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	guidelines := g.retrieveGuidelines(ctx, req.JobDescriptionText)
	prompt := g.promptBuilder.BuildMatchAnalysisPrompt(req.ResumeText, req.JobDescriptionText, guidelines)

	log.Printf("📝 Match analysis prompt length: %d characters", len(prompt))

	response, err := g.gemini.GenerateJSONWithRetry(ctx, prompt, analysisTemp, g.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate match analysis: %w", err)
	}

	result, err := parseAnalysisResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse match analysis: %w", err)
	}
	return result, nil
}

// retrieveGuidelines returns prompt context; retrieval problems only cost context.
func (g *GeminiAnalyzer) retrieveGuidelines(ctx context.Context, jobDescription string) string {
	if g.guidelines == nil {
		return FormatRAGContext(nil)
	}

	embedding, err := g.gemini.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		log.Printf("⚠️  Failed to embed job description for retrieval: %v\n", err)
		return FormatRAGContext(nil)
	}

	results, err := g.guidelines.SearchSimilar(ctx, embedding, GuidelineDocType, guidelineLimit)
	if err != nil {
		log.Printf("⚠️  Failed to search guidelines: %v\n", err)
		return FormatRAGContext(nil)
	}
	return FormatRAGContext(results)
}

func parseAnalysisResponse(response string) (*models.AnalysisResult, error) {
	var raw llmAnalysis
	if err := json.Unmarshal([]byte(extractJSON(response)), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if raw.MatchScore == nil {
		return nil, fmt.Errorf("response has no match_score")
	}
	score := math.Round(*raw.MatchScore)
	if score < models.MinMatchScore || score > models.MaxMatchScore {
		return nil, fmt.Errorf("match_score %v outside [%d,%d]", *raw.MatchScore, models.MinMatchScore, models.MaxMatchScore)
	}

	result := &models.AnalysisResult{
		MatchScore:      int(score),
		Strengths:       cleanItems(raw.Strengths),
		Weaknesses:      cleanItems(raw.Weaknesses),
		MissingSkills:   cleanItems(raw.MissingSkills),
		Recommendations: cleanItems(raw.Recommendations),
		Summary:         strings.TrimSpace(raw.Summary),
	}
	result.Normalize()
	return result, nil
}

// cleanItems trims entries and drops blank ones, keeping order.
func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

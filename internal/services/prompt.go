package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchAnalysisPrompt creates the prompt for a resume/job match analysis.
func (pb *PromptBuilder) BuildMatchAnalysisPrompt(resumeText, jobDescription, guidelines string) string {
	return fmt.Sprintf(`You are an expert technical recruiter comparing a candidate's resume with a job description.

HIRING GUIDELINES:
%s

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Assess how well the resume fits the job. Base every point on evidence from the two texts; do not invent experience the resume does not show.

Scoring (integer 0-100):
- 80-100: meets nearly all requirements, including the must-haves
- 60-79: meets the core requirements with some gaps
- 0-59: misses several core requirements

Return your response in the following JSON format:
{
  "match_score": <integer 0-100>,
  "strengths": ["<short strength>", ...],
  "weaknesses": ["<short weakness>", ...],
  "missing_skills": ["<skill named in the job description but absent from the resume>", ...],
  "recommendations": ["<specific, actionable change to the resume>", ...],
  "summary": "<2-3 sentence overall assessment>"
}

Keep each list item under 20 words. Use empty arrays when a list has nothing to report.`,
		guidelines, jobDescription, resumeText)
}

// FormatRAGContext turns retrieved guideline chunks into prompt context.
func FormatRAGContext(results []SearchResult) string {
	if len(results) == 0 {
		return "No additional guidelines. Use general hiring judgement."
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Guideline %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

// Package presenter turns an analysis result into display sections. Every
// function here is pure: the same result always renders the same output.
package presenter

import (
	"alfredoptarigan/resume-matcher/internal/models"
)

// Score bands. Policy constants, not statistics.
const (
	ExcellentThreshold = 80
	GoodThreshold      = 60
)

const (
	LabelExcellent = "Excellent Match"
	LabelGood      = "Good Match"
	LabelNeedsWork = "Needs Improvement"
)

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
)

type SectionKind string

const (
	SectionStrengths       SectionKind = "strengths"
	SectionWeaknesses      SectionKind = "weaknesses"
	SectionMissingSkills   SectionKind = "missing_skills"
	SectionRecommendations SectionKind = "recommendations"
)

type Section struct {
	Kind  SectionKind `json:"kind"`
	Title string      `json:"title"`
	Tone  Tone        `json:"tone"`
	// Badges renders items as chips instead of a bulleted list.
	Badges bool     `json:"badges"`
	Items  []string `json:"items"`
}

type ResultView struct {
	MatchScore int       `json:"match_score"`
	Label      string    `json:"label"`
	Tone       Tone      `json:"tone"`
	Summary    string    `json:"summary"`
	Sections   []Section `json:"sections"`
}

// Label maps a score to its qualitative band.
func Label(score int) string {
	switch {
	case score >= ExcellentThreshold:
		return LabelExcellent
	case score >= GoodThreshold:
		return LabelGood
	default:
		return LabelNeedsWork
	}
}

// ToneFor maps a score to the colour used for the score and progress bar.
func ToneFor(score int) Tone {
	switch {
	case score >= ExcellentThreshold:
		return ToneSuccess
	case score >= GoodThreshold:
		return ToneWarning
	default:
		return ToneDanger
	}
}

// Present returns nil for a nil result.
func Present(result *models.AnalysisResult) *ResultView {
	if result == nil {
		return nil
	}

	return &ResultView{
		MatchScore: result.MatchScore,
		Label:      Label(result.MatchScore),
		Tone:       ToneFor(result.MatchScore),
		Summary:    result.Summary,
		Sections: []Section{
			{Kind: SectionStrengths, Title: "Strengths", Tone: ToneSuccess, Items: items(result.Strengths)},
			{Kind: SectionWeaknesses, Title: "Areas for Improvement", Tone: ToneWarning, Items: items(result.Weaknesses)},
			{Kind: SectionMissingSkills, Title: "Missing Skills", Tone: ToneDanger, Badges: true, Items: items(result.MissingSkills)},
			{Kind: SectionRecommendations, Title: "Recommendations", Tone: ToneInfo, Items: items(result.Recommendations)},
		},
	}
}

func items(in []string) []string {
	return append([]string{}, in...)
}

package models

import (
	"fmt"
	"strings"
)

// AnalysisRequest is built at submit time from the two form fields.
type AnalysisRequest struct {
	ResumeText         string `json:"resume_text"`
	JobDescriptionText string `json:"job_description_text"`
}

// Validate reports every field that is blank after trimming.
func (r AnalysisRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.ResumeText) == "" {
		missing = append(missing, FieldResume)
	}
	if strings.TrimSpace(r.JobDescriptionText) == "" {
		missing = append(missing, FieldJobDescription)
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

const (
	FieldResume         = "resume"
	FieldJobDescription = "job_description"
)

const (
	MinMatchScore = 0
	MaxMatchScore = 100
)

type AnalysisResult struct {
	MatchScore      int      `json:"match_score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	MissingSkills   []string `json:"missing_skills"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// Normalize replaces nil lists with empty ones so callers never see null.
func (r *AnalysisResult) Normalize() {
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
}

func (r *AnalysisResult) Validate() error {
	if r.MatchScore < MinMatchScore || r.MatchScore > MaxMatchScore {
		return fmt.Errorf("match score %d outside [%d,%d]", r.MatchScore, MinMatchScore, MaxMatchScore)
	}
	return nil
}

// Clone returns a deep copy so snapshots cannot alias controller state.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := &AnalysisResult{
		MatchScore:      r.MatchScore,
		Strengths:       append([]string{}, r.Strengths...),
		Weaknesses:      append([]string{}, r.Weaknesses...),
		MissingSkills:   append([]string{}, r.MissingSkills...),
		Recommendations: append([]string{}, r.Recommendations...),
		Summary:         r.Summary,
	}
	return c
}

// UIState is a point-in-time copy of a controller's state.
type UIState struct {
	ResumeText         string          `json:"resume_text"`
	JobDescriptionText string          `json:"job_description_text"`
	IsAnalyzing        bool            `json:"is_analyzing"`
	Result             *AnalysisResult `json:"result,omitempty"`
}

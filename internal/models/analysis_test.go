package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalysisRequest
		missing []string
	}{
		{"both present", AnalysisRequest{"Go engineer", "Need Go"}, nil},
		{"resume blank", AnalysisRequest{"   \n\t", "Need Go"}, []string{FieldResume}},
		{"job blank", AnalysisRequest{"Go engineer", ""}, []string{FieldJobDescription}},
		{"both blank", AnalysisRequest{" ", "\n"}, []string{FieldResume, FieldJobDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.missing, verr.Fields)
			assert.Contains(t, err.Error(), "missing information")
		})
	}
}

func TestAnalysisResult_NormalizeAndValidate(t *testing.T) {
	r := &AnalysisResult{MatchScore: 100}
	r.Normalize()
	assert.NotNil(t, r.Strengths)
	assert.NotNil(t, r.Weaknesses)
	assert.NotNil(t, r.MissingSkills)
	assert.NotNil(t, r.Recommendations)
	assert.NoError(t, r.Validate())

	assert.Error(t, (&AnalysisResult{MatchScore: 101}).Validate())
	assert.Error(t, (&AnalysisResult{MatchScore: -1}).Validate())
}

func TestAnalysisResult_CloneDoesNotAlias(t *testing.T) {
	r := &AnalysisResult{MatchScore: 70, Strengths: []string{"a", "b"}}
	c := r.Clone()
	c.Strengths[0] = "changed"

	assert.Equal(t, "a", r.Strengths[0])
	assert.Nil(t, (*AnalysisResult)(nil).Clone())
}

func TestAnalysisFailure_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&AnalysisFailure{Cause: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "analysis failed: boom", err.Error())
}

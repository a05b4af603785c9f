package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

var sampleRequest = models.AnalysisRequest{ResumeText: "resume", JobDescriptionText: "job"}

func TestWithTimeout_PassesThrough(t *testing.T) {
	a := WithTimeout(scoreAnalyzer(42), time.Second)

	result, err := a.Analyze(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, 42, result.MatchScore)
}

func TestWithTimeout_IgnoringAnalyzerStillTimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	stuck := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		<-block
		return nil, nil
	})

	start := time.Now()
	_, err := WithTimeout(stuck, 20*time.Millisecond).Analyze(context.Background(), sampleRequest)

	assert.ErrorIs(t, err, ErrAnalysisTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWithTimeout_ParentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	waiting := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := WithTimeout(waiting, time.Second).Analyze(ctx, sampleRequest)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrAnalysisTimeout))
}

func TestWithTimeout_RecoversPanic(t *testing.T) {
	panicking := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		panic("kaboom")
	})

	_, err := WithTimeout(panicking, time.Second).Analyze(context.Background(), sampleRequest)
	assert.ErrorContains(t, err, "kaboom")
}

func TestWithValidation(t *testing.T) {
	t.Run("normalizes lists", func(t *testing.T) {
		result, err := WithValidation(scoreAnalyzer(10)).Analyze(context.Background(), sampleRequest)
		require.NoError(t, err)
		assert.NotNil(t, result.Weaknesses)
		assert.NotNil(t, result.MissingSkills)
		assert.NotNil(t, result.Recommendations)
	})

	t.Run("rejects out of range", func(t *testing.T) {
		for _, score := range []int{-1, 101} {
			_, err := WithValidation(scoreAnalyzer(score)).Analyze(context.Background(), sampleRequest)
			assert.ErrorContains(t, err, "invalid analysis result")
		}
	})

	t.Run("accepts bounds", func(t *testing.T) {
		for _, score := range []int{0, 100} {
			_, err := WithValidation(scoreAnalyzer(score)).Analyze(context.Background(), sampleRequest)
			assert.NoError(t, err)
		}
	})

	t.Run("rejects nil result", func(t *testing.T) {
		empty := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
			return nil, nil
		})
		_, err := WithValidation(empty).Analyze(context.Background(), sampleRequest)
		assert.Error(t, err)
	})

	t.Run("passes errors through", func(t *testing.T) {
		boom := errors.New("boom")
		failing := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
			return nil, boom
		})
		_, err := WithValidation(failing).Analyze(context.Background(), sampleRequest)
		assert.ErrorIs(t, err, boom)
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alfredoptarigan/resume-matcher/internal/models"
)

// Analyzer scores a resume against a job description. Implementations must
// not mutate caller state so that a failed call can simply be retried.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// AnalyzerFunc adapts a plain function to Analyzer.
type AnalyzerFunc func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)

func (f AnalyzerFunc) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	return f(ctx, req)
}

// ErrAnalysisTimeout is wrapped into the error returned when the deadline passes.
var ErrAnalysisTimeout = errors.New("analysis timed out")

type timeoutAnalyzer struct {
	inner   Analyzer
	timeout time.Duration
}

// WithTimeout bounds every call to inner by d.
func WithTimeout(inner Analyzer, d time.Duration) Analyzer {
	return &timeoutAnalyzer{inner: inner, timeout: d}
}

func (t *timeoutAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type outcome struct {
		result *models.AnalysisResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("analyzer panicked: %v", r)}
			}
		}()
		result, err := t.inner.Analyze(ctx, req)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrAnalysisTimeout, t.timeout)
		}
		return out.result, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrAnalysisTimeout, t.timeout)
		}
		return nil, ctx.Err()
	}
}

type validatingAnalyzer struct {
	inner Analyzer
}

// WithValidation normalizes results and rejects any whose score is out of range.
func WithValidation(inner Analyzer) Analyzer {
	return &validatingAnalyzer{inner: inner}
}

func (v *validatingAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	result, err := v.inner.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("analyzer returned no result")
	}

	result.Normalize()
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis result: %w", err)
	}
	return result, nil
}

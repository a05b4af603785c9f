package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (r *recordingNotifier) Notify(_ uuid.UUID, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		out = append(out, n.Title)
	}
	return out
}

func (r *recordingNotifier) last() models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sent[len(r.sent)-1]
}

func scoreAnalyzer(score int) Analyzer {
	return AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		return &models.AnalysisResult{MatchScore: score, Strengths: []string{"s"}, Summary: "ok"}, nil
	})
}

func newController(analyzer Analyzer, timeout time.Duration) (*AnalysisController, *recordingNotifier) {
	n := &recordingNotifier{}
	return NewAnalysisController(uuid.New(), analyzer, n, timeout), n
}

func TestController_InitialState(t *testing.T) {
	c, _ := newController(scoreAnalyzer(50), time.Second)

	state := c.State()
	assert.Empty(t, state.ResumeText)
	assert.Empty(t, state.JobDescriptionText)
	assert.False(t, state.IsAnalyzing)
	assert.Nil(t, state.Result)
}

func TestController_SettersOnlyTouchTheirField(t *testing.T) {
	c, _ := newController(scoreAnalyzer(50), time.Second)

	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")
	c.SetResumeText("")

	state := c.State()
	assert.Empty(t, state.ResumeText)
	assert.Equal(t, "job", state.JobDescriptionText)
	assert.False(t, state.IsAnalyzing)
}

func TestController_ValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		job    string
		fields []string
	}{
		{"both empty", "", "", []string{models.FieldResume, models.FieldJobDescription}},
		{"resume whitespace", " \n\t", "job", []string{models.FieldResume}},
		{"job whitespace", "resume", "   ", []string{models.FieldJobDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
				calls.Add(1)
				return &models.AnalysisResult{MatchScore: 1}, nil
			})
			c, n := newController(analyzer, time.Second)
			c.SetResumeText(tt.resume)
			c.SetJobDescriptionText(tt.job)
			before := c.State()

			err := c.SubmitAnalysis(context.Background())

			var validationErr *models.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.fields, validationErr.Fields)
			assert.Equal(t, before, c.State())
			assert.Zero(t, calls.Load())

			require.Len(t, n.titles(), 1)
			assert.Equal(t, "Missing Information", n.last().Title)
			assert.Equal(t, "Please provide both your resume and the job description.", n.last().Description)
			assert.Equal(t, models.VariantDestructive, n.last().Variant)
		})
	}
}

func TestController_SuccessfulAnalysis(t *testing.T) {
	var got models.AnalysisRequest
	analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		got = req
		return &models.AnalysisResult{MatchScore: 88, Summary: "great"}, nil
	})
	c, n := newController(analyzer, time.Second)
	c.SetResumeText("  resume text ")
	c.SetJobDescriptionText("job text")

	require.NoError(t, c.SubmitAnalysis(context.Background()))

	// texts are passed through untrimmed
	assert.Equal(t, "  resume text ", got.ResumeText)
	assert.Equal(t, "job text", got.JobDescriptionText)

	state := c.State()
	assert.False(t, state.IsAnalyzing)
	require.NotNil(t, state.Result)
	assert.Equal(t, 88, state.Result.MatchScore)
	assert.NotNil(t, state.Result.Weaknesses)

	assert.Equal(t, []string{"Analysis Complete!"}, n.titles())
	assert.Equal(t, models.VariantNormal, n.last().Variant)
}

func TestController_SingleInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		calls.Add(1)
		<-release
		return &models.AnalysisResult{MatchScore: 60}, nil
	})
	c, n := newController(analyzer, 5*time.Second)
	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")

	done, err := c.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, c.IsAnalyzing())
	assert.True(t, c.State().IsAnalyzing)

	c.SetResumeText("edited while analyzing")
	_, err = c.Start(context.Background())
	assert.ErrorIs(t, err, models.ErrAnalysisInProgress)

	// clearing the fields does not turn the rejection into a validation toast
	c.SetJobDescriptionText("")
	_, err = c.Start(context.Background())
	assert.ErrorIs(t, err, models.ErrAnalysisInProgress)
	assert.Empty(t, n.titles())

	close(release)
	require.NoError(t, <-done)

	assert.False(t, c.IsAnalyzing())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "edited while analyzing", c.State().ResumeText)
	assert.Equal(t, 60, c.State().Result.MatchScore)
}

func TestController_FailureKeepsPreviousResult(t *testing.T) {
	var fail atomic.Bool
	analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		if fail.Load() {
			return nil, errors.New("upstream unavailable")
		}
		return &models.AnalysisResult{MatchScore: 70}, nil
	})
	c, n := newController(analyzer, time.Second)
	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")

	require.NoError(t, c.SubmitAnalysis(context.Background()))
	fail.Store(true)

	err := c.SubmitAnalysis(context.Background())
	var failure *models.AnalysisFailure
	require.True(t, errors.As(err, &failure))
	assert.EqualError(t, failure.Cause, "upstream unavailable")

	state := c.State()
	assert.False(t, state.IsAnalyzing)
	require.NotNil(t, state.Result)
	assert.Equal(t, 70, state.Result.MatchScore)

	last := n.last()
	assert.Equal(t, "Analysis Failed", last.Title)
	assert.Equal(t, models.VariantDestructive, last.Variant)
	assert.Contains(t, last.Description, "upstream unavailable")
}

func TestController_Timeout(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	c, n := newController(analyzer, 20*time.Millisecond)
	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")

	err := c.SubmitAnalysis(context.Background())
	assert.ErrorIs(t, err, ErrAnalysisTimeout)
	assert.False(t, c.IsAnalyzing())
	assert.Nil(t, c.State().Result)
	assert.Equal(t, "Analysis Failed", n.last().Title)
}

func TestController_AnalyzerPanic(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		panic("boom")
	})

	for _, timeout := range []time.Duration{0, time.Second} {
		c, n := newController(analyzer, timeout)
		c.SetResumeText("resume")
		c.SetJobDescriptionText("job")

		err := c.SubmitAnalysis(context.Background())
		var failure *models.AnalysisFailure
		require.True(t, errors.As(err, &failure), "timeout %s", timeout)
		assert.False(t, c.IsAnalyzing())
		assert.Equal(t, "Analysis Failed", n.last().Title)
	}
}

func TestController_RejectsOutOfRangeScore(t *testing.T) {
	c, n := newController(scoreAnalyzer(140), time.Second)
	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")

	err := c.SubmitAnalysis(context.Background())
	var failure *models.AnalysisFailure
	require.True(t, errors.As(err, &failure))
	assert.Nil(t, c.State().Result)
	assert.Equal(t, "Analysis Failed", n.last().Title)
}

func TestController_StateIsASnapshot(t *testing.T) {
	c, _ := newController(scoreAnalyzer(65), time.Second)
	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")
	require.NoError(t, c.SubmitAnalysis(context.Background()))

	snapshot := c.State()
	snapshot.Result.MatchScore = 1
	snapshot.Result.Strengths[0] = "changed"

	assert.Equal(t, 65, c.State().Result.MatchScore)
	assert.Equal(t, "s", c.State().Result.Strengths[0])
}

func TestController_ResubmitReplacesResult(t *testing.T) {
	var score atomic.Int32
	score.Store(40)
	analyzer := AnalyzerFunc(func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
		return &models.AnalysisResult{MatchScore: int(score.Load())}, nil
	})
	c, n := newController(analyzer, time.Second)
	c.SetResumeText("resume")
	c.SetJobDescriptionText("job")

	require.NoError(t, c.SubmitAnalysis(context.Background()))
	score.Store(90)
	require.NoError(t, c.SubmitAnalysis(context.Background()))

	assert.Equal(t, 90, c.State().Result.MatchScore)
	assert.Equal(t, []string{"Analysis Complete!", "Analysis Complete!"}, n.titles())
}

func TestController_KeywordScenario(t *testing.T) {
	c, n := newController(NewKeywordAnalyzer(), time.Second)
	c.SetResumeText("Engineer with Python experience")
	c.SetJobDescriptionText("Looking for a cloud engineer")

	require.NoError(t, c.SubmitAnalysis(context.Background()))

	result := c.State().Result
	require.NotNil(t, result)
	assert.Equal(t, 25, result.MatchScore)
	assert.Equal(t, []string{"Analysis Complete!"}, n.titles())
}

func TestController_NilNotifier(t *testing.T) {
	c := NewAnalysisController(uuid.New(), scoreAnalyzer(10), nil, time.Second)

	err := c.SubmitAnalysis(context.Background())
	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

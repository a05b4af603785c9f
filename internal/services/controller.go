package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
)

var (
	missingInformation = models.Notification{
		Title:       "Missing Information",
		Description: "Please provide both your resume and the job description.",
		Variant:     models.VariantDestructive,
	}
	analysisComplete = models.Notification{
		Title:       "Analysis Complete!",
		Description: "Your resume has been analyzed successfully.",
		Variant:     models.VariantNormal,
	}
)

// AnalysisController owns the form state of one page: the two text fields,
// the analyzing flag and the last successful result. At most one analysis
// is in flight at a time.
type AnalysisController struct {
	sessionID uuid.UUID
	analyzer  Analyzer
	notifier  Notifier

	mu             sync.Mutex
	resumeText     string
	jobDescription string
	analyzing      bool
	result         *models.AnalysisResult
}

// NewAnalysisController wraps analyzer so every call is validated and, when
// timeout is positive, bounded by it.
func NewAnalysisController(sessionID uuid.UUID, analyzer Analyzer, notifier Notifier, timeout time.Duration) *AnalysisController {
	if timeout > 0 {
		analyzer = WithTimeout(analyzer, timeout)
	}
	return &AnalysisController{
		sessionID: sessionID,
		analyzer:  WithValidation(analyzer),
		notifier:  notifier,
	}
}

func (c *AnalysisController) SetResumeText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeText = text
}

func (c *AnalysisController) SetJobDescriptionText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobDescription = text
}

// State returns a snapshot that does not share memory with the controller.
func (c *AnalysisController) State() models.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.UIState{
		ResumeText:         c.resumeText,
		JobDescriptionText: c.jobDescription,
		IsAnalyzing:        c.analyzing,
		Result:             c.result.Clone(),
	}
}

func (c *AnalysisController) IsAnalyzing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analyzing
}

// Start validates the fields and, if they are usable, marks the controller
// as analyzing before returning. The analysis runs in the background; the
// returned channel yields its outcome (nil or *models.AnalysisFailure) once
// and is then closed.
//
// Returns models.ErrAnalysisInProgress without side effects while another
// analysis is awaiting, and *models.ValidationError when a field is blank.
func (c *AnalysisController) Start(ctx context.Context) (<-chan error, error) {
	c.mu.Lock()
	if c.analyzing {
		c.mu.Unlock()
		return nil, models.ErrAnalysisInProgress
	}

	req := models.AnalysisRequest{
		ResumeText:         c.resumeText,
		JobDescriptionText: c.jobDescription,
	}
	if err := req.Validate(); err != nil {
		c.mu.Unlock()
		c.notify(missingInformation)
		return nil, err
	}

	c.analyzing = true
	c.mu.Unlock()

	log.Printf("🤖 [%s] Analysis started\n", c.sessionID)

	done := make(chan error, 1)
	go c.run(ctx, req, done)
	return done, nil
}

// SubmitAnalysis runs one full submission cycle and waits for it to finish.
func (c *AnalysisController) SubmitAnalysis(ctx context.Context) error {
	done, err := c.Start(ctx)
	if err != nil {
		return err
	}
	return <-done
}

func (c *AnalysisController) run(ctx context.Context, req models.AnalysisRequest, done chan<- error) {
	defer close(done)

	result, err := c.analyze(ctx, req)

	c.mu.Lock()
	if err == nil {
		c.result = result
	}
	c.analyzing = false
	c.mu.Unlock()

	if err != nil {
		failure := &models.AnalysisFailure{Cause: err}
		log.Printf("❌ [%s] %v\n", c.sessionID, failure)
		c.notify(models.Notification{
			Title:       "Analysis Failed",
			Description: fmt.Sprintf("We couldn't analyze your resume: %v", err),
			Variant:     models.VariantDestructive,
		})
		done <- failure
		return
	}

	log.Printf("✅ [%s] Analysis completed with score %d\n", c.sessionID, result.MatchScore)
	c.notify(analysisComplete)
	done <- nil
}

func (c *AnalysisController) analyze(ctx context.Context, req models.AnalysisRequest) (result *models.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("analyzer panicked: %v", r)
		}
	}()
	return c.analyzer.Analyze(ctx, req)
}

func (c *AnalysisController) notify(n models.Notification) {
	if c.notifier != nil {
		c.notifier.Notify(c.sessionID, n)
	}
}

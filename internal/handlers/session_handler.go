package handlers

import (
	"bytes"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/presenter"
	"alfredoptarigan/resume-matcher/internal/services"
)

// SessionStateResponse is what the page polls to redraw itself.
type SessionStateResponse struct {
	ID                 string                `json:"id"`
	ResumeText         string                `json:"resume_text"`
	JobDescriptionText string                `json:"job_description_text"`
	IsAnalyzing        bool                  `json:"is_analyzing"`
	Result             *presenter.ResultView `json:"result"`
	Notifications      []models.Notification `json:"notifications"`
}

type SessionHandler struct {
	store *services.SessionStore
	// analyses outlive the request that started them
	baseCtx context.Context
}

func NewSessionHandler(ctx context.Context, store *services.SessionStore) *SessionHandler {
	return &SessionHandler{
		store:   store,
		baseCtx: ctx,
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	session := h.store.Create()
	return c.Status(fiber.StatusCreated).JSON(models.SessionResponse{
		ID: session.ID.String(),
	})
}

// HandleGetState handles GET /sessions/:id
func (h *SessionHandler) HandleGetState(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	state := session.Controller.State()
	return c.JSON(SessionStateResponse{
		ID:                 session.ID.String(),
		ResumeText:         state.ResumeText,
		JobDescriptionText: state.JobDescriptionText,
		IsAnalyzing:        state.IsAnalyzing,
		Result:             presenter.Present(state.Result),
		Notifications:      session.DrainNotifications(),
	})
}

// HandleSetResume handles PUT /sessions/:id/resume
func (h *SessionHandler) HandleSetResume(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	var req models.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session.Controller.SetResumeText(req.Text)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSetJobDescription handles PUT /sessions/:id/job-description
func (h *SessionHandler) HandleSetJobDescription(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	var req models.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session.Controller.SetJobDescriptionText(req.Text)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAnalyze handles POST /sessions/:id/analyze. The analysis runs in the
// background; the page polls the session state for the outcome.
func (h *SessionHandler) HandleAnalyze(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	if _, err := session.Controller.Start(h.baseCtx); err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrAnalysisInProgress):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  err.Error(),
				"fields": validationErr.Fields,
			})
		default:
			return err
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:          session.ID.String(),
		IsAnalyzing: true,
	})
}

// HandleGetResult handles GET /sessions/:id/result and returns the rendered
// result fragment, or 204 when there is nothing to show yet.
func (h *SessionHandler) HandleGetResult(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	view := presenter.Present(session.Controller.State().Result)
	if view == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var buf bytes.Buffer
	if err := presenter.RenderHTML(&buf, view); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// HandleDelete handles DELETE /sessions/:id
func (h *SessionHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}
	if err := h.store.Delete(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) lookup(c *fiber.Ctx) (*services.Session, error) {
	id, err := parseSessionID(c)
	if err != nil {
		return nil, err
	}
	session, err := h.store.Get(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return session, nil
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}
	return id, nil
}

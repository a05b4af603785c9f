package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

const resumeField = "resume"

type UploadHandler struct {
	store       *services.SessionStore
	extractor   services.TextExtractor
	maxFileSize int64
}

func NewUploadHandler(
	store *services.SessionStore,
	extractor services.TextExtractor,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		store:       store,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /sessions/:id/resume/upload. The file is parsed in
// memory and its text replaces the session's resume field.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}
	session, err := h.store.Get(id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	file, err := c.FormFile(resumeField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume uploaded. Please upload a PDF, DOCX or text file as 'resume'.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open resume file: %v", err),
		})
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxFileSize+1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume file: %v", err),
		})
	}

	content, err := h.extractor.ExtractBytes(file.Filename, data)
	if err != nil {
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, services.ErrUnsupportedFileType) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume: %v", err),
		})
	}

	session.Controller.SetResumeText(content.Text)

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:           session.ID.String(),
		OriginalName: file.Filename,
		FileType:     content.FileType,
		Characters:   len([]rune(content.Text)),
		PageCount:    content.PageCount,
	})
}

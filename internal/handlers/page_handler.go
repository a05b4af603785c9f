package handlers

import (
	"bytes"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/services"
	"alfredoptarigan/resume-matcher/internal/web"
)

type PageHandler struct {
	store  *services.SessionStore
	engine string
	render func(io.Writer, web.PageData) error
}

func NewPageHandler(store *services.SessionStore, engine string) *PageHandler {
	return &PageHandler{
		store:  store,
		engine: engine,
		render: web.RenderIndex,
	}
}

// HandleIndex handles GET /. Every page load starts a fresh session.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	session := h.store.Create()

	var buf bytes.Buffer
	if err := h.render(&buf, web.PageData{
		SessionID: session.ID.String(),
		Engine:    h.engine,
	}); err != nil {
		if delErr := h.store.Delete(session.ID); delErr != nil {
			log.Printf("⚠️ Failed to drop session %s after render error: %v\n", session.ID, delErr)
		}
		return err
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

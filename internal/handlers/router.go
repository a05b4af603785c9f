package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-matcher/internal/web"
)

type RouterConfig struct {
	AppName     string
	BodyLimit   int64
	AccessLog   bool
	AnalyzeRate int // analyze calls per client per minute, 0 disables
}

type Handlers struct {
	Page    *PageHandler
	Session *SessionHandler
	Upload  *UploadHandler
}

// NewRouter builds the Fiber app with middleware and every route mounted.
func NewRouter(cfg RouterConfig, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.BodyLimit) + 64*1024,
		ErrorHandler: ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", h.Page.HandleIndex)
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	sessions := api.Group("/sessions")
	sessions.Post("/", h.Session.HandleCreate)
	sessions.Get("/:id", h.Session.HandleGetState)
	sessions.Delete("/:id", h.Session.HandleDelete)
	sessions.Put("/:id/resume", h.Session.HandleSetResume)
	sessions.Put("/:id/job-description", h.Session.HandleSetJobDescription)
	sessions.Post("/:id/resume/upload", h.Upload.HandleUpload)
	sessions.Get("/:id/result", h.Session.HandleGetResult)

	analyze := []fiber.Handler{}
	if cfg.AnalyzeRate > 0 {
		analyze = append(analyze, limiter.New(limiter.Config{
			Max:        cfg.AnalyzeRate,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTooManyRequests, "Too many analysis requests, please slow down")
			},
		}))
	}
	analyze = append(analyze, h.Session.HandleAnalyze)
	sessions.Post("/:id/analyze", analyze...)

	return app
}

// ErrorHandler renders every error as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize analyzer
	analyzer, err := services.NewAnalyzerFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer: %v", err)
	}

	// Sessions and notifications
	store := services.NewSessionStore(analyzer, cfg.Analyzer.Timeout, cfg.Session.IdleTTL)
	bus := services.NewNotificationBus(cfg.Notifications.Buffer, services.LogSink{}, store)
	store.SetNotifier(bus)

	bus.Start(ctx)
	store.StartSweeper(ctx, cfg.Session.SweepInterval)
	log.Println("✅ Session store started successfully")

	// Initialize Handlers
	app := handlers.NewRouter(handlers.RouterConfig{
		AppName:     "AI Resume Matcher",
		BodyLimit:   cfg.Upload.MaxFileSize,
		AccessLog:   true,
		AnalyzeRate: cfg.Analyzer.AnalyzeLimit,
	}, handlers.Handlers{
		Page:    handlers.NewPageHandler(store, cfg.Analyzer.Engine),
		Session: handlers.NewSessionHandler(ctx, store),
		Upload:  handlers.NewUploadHandler(store, services.NewTextExtractor(), cfg.Upload.MaxFileSize),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		store.Stop()
		bus.Stop()
		cancel()
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (engine: %s)\n", addr, cfg.Analyzer.Engine)
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	<-stopped
	log.Println("👋 Server stopped")
}

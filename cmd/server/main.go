package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuralthoughts-backend/internal/config"
	"neuralthoughts-backend/internal/handlers"
	"neuralthoughts-backend/internal/router"
	"neuralthoughts-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Neural Thoughts Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSecs)*time.Second,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if cfg.Configured() {
		log.Println("✓ Gemini Flash client initialized")
	} else {
		log.Println("⚠ GEMINI_API_KEY not set — AI endpoints will serve fallback responses")
	}

	// ──── Step 3: Initialize Handlers ────
	refineHandler := handlers.NewRefineHandler(geminiService)
	translateHandler := handlers.NewTranslateHandler(geminiService)
	chatHandler := handlers.NewChatHandler(geminiService)
	videoHandler := handlers.NewVideoHandler(time.Duration(cfg.VideoProcessingDelayMS) * time.Millisecond)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(refineHandler, translateHandler, chatHandler, videoHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Must outlast the Gemini call timeout and the mock video delay.
		WriteTimeout: time.Duration(cfg.GeminiTimeoutSecs+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Neural Thoughts Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

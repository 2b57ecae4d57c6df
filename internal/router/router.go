package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"neuralthoughts-backend/internal/handlers"
	"neuralthoughts-backend/internal/middleware"
)

func New(
	refineHandler *handlers.RefineHandler,
	translateHandler *handlers.TranslateHandler,
	chatHandler *handlers.ChatHandler,
	videoHandler *handlers.VideoHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// API rate limiter (30 req/min per IP)
	apiLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Post("/refine", refineHandler.Refine)
		r.Post("/translate", translateHandler.Translate)
		r.Post("/chat", chatHandler.Chat)
		r.Post("/process-video", videoHandler.Process)
	})

	return r
}

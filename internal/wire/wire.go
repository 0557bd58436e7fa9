package wire

import (
	"net/http"

	"book-review-api/internal/adaptor"
	"book-review-api/internal/data/repository"
	"book-review-api/internal/usecase"
	"book-review-api/pkg/middleware"
	"book-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := NewRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// NewRouter konfigurasi Chi router. Exported so tests can mount mock
// services behind the real middleware chain.
func NewRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(config.RateLimit, logger))

	// Apply routes
	wireReview(r, handler.Review)
	wireComment(r, handler.Comment)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(adaptor.NotFound)
	r.MethodNotAllowed(adaptor.MethodNotAllowed)

	return r
}

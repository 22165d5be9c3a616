// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"moneyflow/internal/api/handler"
	"moneyflow/pkg/metrics"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(accountHandler *handler.AccountHandler, collector *metrics.Collector, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if collector != nil {
		r.Handle("/metrics", collector.Handler())
	}

	// Account API routes
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/send/{sourceAccountID}/{targetAccountID}/{amount}", accountHandler.SendMoney)
		r.Get("/{accountID}/balance", accountHandler.GetBalance)
	})

	return r
}

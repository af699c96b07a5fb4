// Package stubserver serves the backend REST surface from the demo catalog.
// It exists so the live client path can be developed and tested without the
// real backend: point API_BASE_URL at it and the app cannot tell the
// difference.
package stubserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/config"
	"github.com/vats147/Inventory-mobile-app/internal/stubserver/apierr"
	"github.com/vats147/Inventory-mobile-app/internal/stubserver/middleware"
	"github.com/vats147/Inventory-mobile-app/pkg/validator"
)

// Service is the HTTP face of the demo backend.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	backend  backend.Backend
	validate validator.Validator
}

type CleanupFunc func(ctx context.Context) error

func New(cfg config.HTTP, logger *slog.Logger, b backend.Backend, v validator.Validator) *Service {
	return &Service{
		cfg:      cfg,
		logger:   logger.With(slog.String("service", "stubserver")),
		backend:  b,
		validate: v,
	}
}

// Router builds the full route tree. Tests mount this directly.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)

	r.Route("/api", func(r chi.Router) {
		// Login is the only route reachable without a token.
		r.Post("/users/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth())

			r.Post("/users/logout", s.handleLogout)
			r.Get("/users/profile", s.handleProfile)
			r.Get("/users", s.handleListUsers)
			r.Post("/users", s.handleCreateUser)
			r.Put("/users/{id}", s.handleUpdateUser)
			r.Delete("/users/{id}", s.handleDeleteUser)

			r.Get("/products", s.handleListProducts)
			r.Post("/products", s.handleCreateProduct)
			r.Get("/products/low-stock", s.handleLowStock)
			r.Get("/products/expired", s.handleExpired)
			r.Get("/products/expiring-soon", s.handleExpiringSoon)
			r.Get("/products/barcode/{code}", s.handleProductByCode)
			r.Get("/products/{id}", s.handleProductByID)
			r.Put("/products/{id}", s.handleUpdateProduct)
			r.Delete("/products/{id}", s.handleDeleteProduct)
			r.Patch("/products/{id}/quantity", s.handleAdjustQuantity)
			r.Post("/stock/reduce", s.handleReduceStock)

			r.Get("/analytics/dashboard", s.handleDashboard)
			r.Get("/analytics/sales", s.handleSales)
			r.Get("/analytics/top-products", s.handleTopProducts)
			r.Get("/analytics/inventory-value", s.handleInventoryValue)
			r.Get("/analytics/stock-movement", s.handleStockMovement)

			r.Get("/activity-logs", s.handleActivityLogs)
		})
	})

	return r
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Router(),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response", slog.Any("error", err))
	}
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	s.writeJSON(w, r, res.StatusCode, res)
}

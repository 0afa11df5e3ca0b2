package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/infra/http/handlers"
	"github.com/xavierca1/site-forms/internal/infra/http/middleware"
)

type Deps struct {
	Contact        *handlers.ContactHandler
	Newsletter     *handlers.NewsletterHandler
	Health         *handlers.HealthHandler
	AllowedOrigins []string
	Logger         *zap.Logger
	// RateLimiter guards the form endpoints when non-nil.
	RateLimiter *middleware.RateLimiter
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	if d.Health != nil {
		r.Get("/health", d.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit)
		}
		r.Get("/contact", d.Contact.Show)
		r.Post("/contact", d.Contact.Submit)
		r.Get("/newsletter", d.Newsletter.Show)
		r.Post("/newsletter", d.Newsletter.Subscribe)
	})

	return r
}

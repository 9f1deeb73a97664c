package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if h.httpMetrics != nil {
		router.Use(h.httpMetrics)
	}
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Use(withGZipRequest)
	router.Use(middleware.Compress(compressionLevel))

	router.Post("/update", h.update)
	router.Get("/get/{uuid}", h.get)
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	if h.metricsProvider != nil {
		router.Method(http.MethodGet, "/metrics", h.metricsProvider.Handler())
	}

	router.HandleFunc("/", h.hello)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}

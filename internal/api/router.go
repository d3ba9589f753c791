package api

import (
	"itinerary-planner/internal/api/handlers"
	"itinerary-planner/internal/ports"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options tunes the cross-cutting middleware. The zero value allows every
// origin and disables rate limiting.
type Options struct {
	AllowedOrigins []string
	// RequestsPerSecond per client IP; 0 disables the limiter.
	RequestsPerSecond float64
	Burst             int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(source ports.CitySource, logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	itineraryHandler := &handlers.ItineraryHandler{Source: source, Logger: logger}
	categoryHandler := &handlers.CategoryHandler{Source: source, Logger: logger}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)
	mux.HandleFunc("/routes/optimize", handlers.OptimizeRoute)
	mux.HandleFunc("/categories", categoryHandler.List)

	var h http.Handler = mux
	if opts.RequestsPerSecond > 0 {
		h = newRateLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst).middleware(h)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	h = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(h)

	return requestIDMiddleware(loggingMiddleware(logger, h))
}

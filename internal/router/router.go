package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-travel-planner/internal/api/assistant"
	"github.com/FACorreiaa/go-travel-planner/internal/api/auth"
	"github.com/FACorreiaa/go-travel-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-planner/internal/api/recommendation"
	"github.com/FACorreiaa/go-travel-planner/internal/api/trips"
)

// Config contains dependencies needed for the router setup
type Config struct {
	AuthHandler            *auth.Handler
	RecommendationHandler  *recommendation.Handler
	ItineraryHandler       *itinerary.Handler
	AssistantHandler       *assistant.Handler
	TripsHandler           *trips.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", cfg.AuthHandler.Register)
			r.Post("/auth/login", cfg.AuthHandler.Login)
			r.Post("/auth/refresh", cfg.AuthHandler.Refresh)
			r.Post("/auth/logout", cfg.AuthHandler.Logout)

			r.Get("/travel-types", cfg.RecommendationHandler.TravelTypes)
			r.Post("/recommendations", cfg.RecommendationHandler.Recommend)
			r.Post("/itineraries", cfg.ItineraryHandler.Build)
			r.Post("/assistant/chat", cfg.AssistantHandler.Chat)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/trips/destinations", cfg.TripsHandler.SaveDestination)
			r.Get("/trips/destinations", cfg.TripsHandler.ListSavedDestinations)
			r.Delete("/trips/destinations/{destinationID}", cfg.TripsHandler.DeleteSavedDestination)
			r.Post("/trips/history", cfg.TripsHandler.AddTravelHistory)
			r.Get("/trips/history", cfg.TripsHandler.ListTravelHistory)
		})
	})

	return r
}

package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/vachspati/smart--trip/internal/api/catalog"
	"github.com/vachspati/smart--trip/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler *itinerary.Handler
	CatalogHandler   *catalog.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	// Permissive CORS: the backend serves a mobile/web client from any origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", cfg.CatalogHandler.Health)

	r.Post("/generate-itinerary", cfg.ItineraryHandler.GenerateItinerary)

	r.Get("/destinations", cfg.CatalogHandler.Destinations)
	r.Get("/tips", cfg.CatalogHandler.Tips)
	r.Post("/search-flights", cfg.CatalogHandler.SearchFlights)
	r.Post("/search-hotels", cfg.CatalogHandler.SearchHotels)
	r.Post("/search-cars", cfg.CatalogHandler.SearchCars)
	r.Post("/search-restaurants", cfg.CatalogHandler.SearchRestaurants)

	r.NotFound(endpointNotFound)
	r.MethodNotAllowed(endpointNotFound)

	return r
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, `{"error":"Endpoint not found","path":%q}`, r.URL.Path)
}

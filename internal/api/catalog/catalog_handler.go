package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vachspati/smart--trip/internal/api"
)

// Handler serves the health check and the static catalog/search endpoints.
// Search responses are memoized per parameter set; the underlying data is
// fixed, so the cache only imitates an upstream provider's behavior.
type Handler struct {
	cache  *gocache.Cache
	logger *slog.Logger
}

func NewHandler(cacheTTL time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
		logger: logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Smart Trip Planner Backend",
		"version":   "1.0.0",
	})
}

func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, popularDestinations)
}

func (h *Handler) Tips(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, travelTips)
}

func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	var req FlightSearchRequest
	if !h.decodeSearchRequest(w, r, &req) {
		return
	}

	key := fmt.Sprintf("flights|%+v", req)
	if cached, ok := h.cache.Get(key); ok {
		api.WriteJSONResponse(w, r, http.StatusOK, cached)
		return
	}

	resp := map[string]interface{}{
		"flights":      flightResults(orDefault(req.From, "New York"), orDefault(req.To, "Dubai")),
		"searchParams": req,
	}
	h.cache.SetDefault(key, resp)
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

func (h *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	var req HotelSearchRequest
	if !h.decodeSearchRequest(w, r, &req) {
		return
	}

	key := fmt.Sprintf("hotels|%+v", req)
	if cached, ok := h.cache.Get(key); ok {
		api.WriteJSONResponse(w, r, http.StatusOK, cached)
		return
	}

	resp := map[string]interface{}{
		"hotels":       hotelResults(orDefault(req.Destination, "Dubai")),
		"searchParams": req,
	}
	h.cache.SetDefault(key, resp)
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

func (h *Handler) SearchCars(w http.ResponseWriter, r *http.Request) {
	var req CarSearchRequest
	if !h.decodeSearchRequest(w, r, &req) {
		return
	}

	key := fmt.Sprintf("cars|%+v", req)
	if cached, ok := h.cache.Get(key); ok {
		api.WriteJSONResponse(w, r, http.StatusOK, cached)
		return
	}

	resp := map[string]interface{}{
		"cars":         carResults(orDefault(req.Location, "Dubai Airport")),
		"searchParams": req,
	}
	h.cache.SetDefault(key, resp)
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

func (h *Handler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	var req RestaurantSearchRequest
	if !h.decodeSearchRequest(w, r, &req) {
		return
	}

	key := fmt.Sprintf("restaurants|%+v", req)
	if cached, ok := h.cache.Get(key); ok {
		api.WriteJSONResponse(w, r, http.StatusOK, cached)
		return
	}

	resp := map[string]interface{}{
		"restaurants":  restaurantResults(orDefault(req.Location, "Dubai"), req.Cuisine),
		"searchParams": req,
	}
	h.cache.SetDefault(key, resp)
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// decodeSearchRequest decodes a search body, accepting empty bodies as
// zero-value requests. Returns false after writing an error response.
func (h *Handler) decodeSearchRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := api.DecodeJSONBody(w, r, dst); err != nil && !errors.Is(err, api.ErrEmptyBody) {
		h.logger.ErrorContext(r.Context(), "Failed to decode search request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

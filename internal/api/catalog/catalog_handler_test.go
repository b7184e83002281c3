package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealth(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Smart Trip Planner Backend", body["service"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestDestinations(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Destinations(w, httptest.NewRequest(http.MethodGet, "/destinations", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var dests []Destination
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dests))
	require.Len(t, dests, 8)
	assert.Equal(t, "Paris, France", dests[0].Name)
}

func TestTips(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Tips(w, httptest.NewRequest(http.MethodGet, "/tips", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var tips []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tips))
	assert.Len(t, tips, 8)
}

func TestSearchFlights_EchoesParams(t *testing.T) {
	h := newTestHandler()

	body := `{"from":"Lisbon","to":"Tokyo","passengers":2}`
	req := httptest.NewRequest(http.MethodPost, "/search-flights", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.SearchFlights(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Flights      []Flight            `json:"flights"`
		SearchParams FlightSearchRequest `json:"searchParams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Flights, 3)
	assert.Equal(t, "Lisbon", resp.Flights[0].From)
	assert.Equal(t, "Tokyo", resp.Flights[0].To)
	assert.Equal(t, "Lisbon", resp.SearchParams.From)
	assert.Equal(t, "2", resp.SearchParams.Passengers.String())
}

func TestSearchFlights_EmptyBodyUsesDefaults(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/search-flights", nil)
	w := httptest.NewRecorder()
	h.SearchFlights(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Flights []Flight `json:"flights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Flights, 3)
	assert.Equal(t, "New York", resp.Flights[0].From)
	assert.Equal(t, "Dubai", resp.Flights[0].To)
}

func TestSearchHotels_CachedResponseStable(t *testing.T) {
	h := newTestHandler()

	do := func() string {
		req := httptest.NewRequest(http.MethodPost, "/search-hotels", strings.NewReader(`{"destination":"Bali"}`))
		w := httptest.NewRecorder()
		h.SearchHotels(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	first := do()
	second := do()
	assert.JSONEq(t, first, second)
	assert.Contains(t, first, "Bali")
}

func TestSearchRestaurants_CuisineOverride(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/search-restaurants", strings.NewReader(`{"location":"Rome","cuisine":"Italian"}`))
	w := httptest.NewRecorder()
	h.SearchRestaurants(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Restaurants []Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Restaurants, 3)
	for _, r := range resp.Restaurants {
		assert.Equal(t, "Italian", r.Cuisine)
		assert.Equal(t, "Rome", r.Location)
	}
}

func TestSearchCars_MalformedBodyRejected(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/search-cars", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	h.SearchCars(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

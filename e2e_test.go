package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vachspati/smart--trip/internal/api/catalog"
	"github.com/vachspati/smart--trip/internal/api/itinerary"
	"github.com/vachspati/smart--trip/internal/router"
	"github.com/vachspati/smart--trip/internal/types"
)

// E2ETestSuite exercises the real router end to end over httptest. No AI
// credential is configured, so generation runs the deterministic fallback
// path; pacing is zero to keep the suite fast.
type E2ETestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
}

func (s *E2ETestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	itinerarySvc := itinerary.NewItineraryService(nil, 0, nil, logger)

	r := router.SetupRouter(&router.Config{
		ItineraryHandler: itinerary.NewHandler(itinerarySvc, logger),
		CatalogHandler:   catalog.NewHandler(5*time.Minute, logger),
	})

	s.server = httptest.NewServer(r)
	s.client = s.server.Client()
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *E2ETestSuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("healthy", body["status"])
	s.Equal("Smart Trip Planner Backend", body["service"])
}

func (s *E2ETestSuite) TestGenerateItineraryStream() {
	reqBody := `{"destination":"Paris","duration":"4","budget":"2500","interests":["art","food"]}`
	resp, err := s.client.Post(s.server.URL+"/generate-itinerary", "application/json", strings.NewReader(reqBody))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	s.Contains(resp.TransferEncoding, "chunked")
	s.Equal("no-cache", resp.Header.Get("Cache-Control"))

	var tokens []string
	var itin *types.Itinerary
	var usage *types.UsageMetrics

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var frame types.StreamFrame
		s.Require().NoError(json.Unmarshal(line, &frame))

		switch {
		case frame.Token != nil:
			s.Nil(itin, "tokens must precede the itinerary frame")
			tokens = append(tokens, *frame.Token)
		case frame.Itinerary != nil:
			s.Nil(usage, "itinerary frame must precede metrics")
			itin = frame.Itinerary
		case frame.Metrics != nil:
			usage = frame.Metrics
		default:
			s.Failf("unexpected frame", "frame with no recognized field: %s", line)
		}
	}
	s.Require().NoError(scanner.Err())

	s.NotEmpty(tokens)
	s.Contains(strings.Join(tokens, ""), "Paris")

	s.Require().NotNil(itin)
	s.Equal("Paris", itin.Destination)
	s.Equal("4", itin.Duration)
	s.Equal("2500", itin.Budget)
	s.Len(itin.Days, 3)
	s.Equal([]string{"art", "food"}, itin.Interests)

	s.Require().NotNil(usage)
	s.Equal(50, usage.PromptTokens)
	s.Equal(300, usage.CompletionTokens)
	s.Equal(350, usage.TotalTokens)
}

func (s *E2ETestSuite) TestGenerateItineraryNumericFields() {
	resp, err := s.client.Post(s.server.URL+"/generate-itinerary", "application/json",
		strings.NewReader(`{"destination":"Tokyo","duration":7,"budget":3000}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var itin *types.Itinerary
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var frame types.StreamFrame
		s.Require().NoError(json.Unmarshal(scanner.Bytes(), &frame))
		if frame.Itinerary != nil {
			itin = frame.Itinerary
		}
	}
	s.Require().NoError(scanner.Err())

	s.Require().NotNil(itin)
	s.Equal("7", itin.Duration)
	s.Equal("3000", itin.Budget)
}

func (s *E2ETestSuite) TestGenerateItineraryValidation() {
	resp, err := s.client.Post(s.server.URL+"/generate-itinerary", "application/json", strings.NewReader(`{}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.JSONEq(`{"error":"Destination or prompt is required"}`, string(body))
}

func (s *E2ETestSuite) TestDestinationsAndTips() {
	resp, err := s.client.Get(s.server.URL + "/destinations")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	var dests []catalog.Destination
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&dests))
	s.Len(dests, 8)

	resp2, err := s.client.Get(s.server.URL + "/tips")
	s.Require().NoError(err)
	defer resp2.Body.Close()
	s.Equal(http.StatusOK, resp2.StatusCode)
	var tips []string
	s.Require().NoError(json.NewDecoder(resp2.Body).Decode(&tips))
	s.Len(tips, 8)
}

func (s *E2ETestSuite) TestSearchFlightsEcho() {
	resp, err := s.client.Post(s.server.URL+"/search-flights", "application/json",
		strings.NewReader(`{"from":"Lisbon","to":"Tokyo"}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	var body struct {
		Flights      []catalog.Flight            `json:"flights"`
		SearchParams catalog.FlightSearchRequest `json:"searchParams"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Len(body.Flights, 3)
	s.Equal("Lisbon", body.Flights[0].From)
	s.Equal("Lisbon", body.SearchParams.From)
}

func (s *E2ETestSuite) TestUnknownEndpoint() {
	resp, err := s.client.Get(s.server.URL + "/nope")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Endpoint not found", body["error"])
	s.Equal("/nope", body["path"])
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

package itinerary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vachspati/smart--trip/internal/types"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	svc := newTestService(nil, 0)
	return NewHandler(svc, svc.logger)
}

func decodeFrames(t *testing.T, body *bytes.Buffer) []types.StreamFrame {
	t.Helper()
	var frames []types.StreamFrame
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var f types.StreamFrame
		require.NoError(t, json.Unmarshal([]byte(line), &f), "every stream line must be a frame: %s", line)
		frames = append(frames, f)
	}
	require.NoError(t, scanner.Err())
	return frames
}

func TestGenerateItinerary_EmptyBodyRejected(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.GenerateItinerary(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Destination or prompt is required"}`, w.Body.String())
	// No stream headers on the validation path
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestGenerateItinerary_MissingBodyRejected(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", nil)
	w := httptest.NewRecorder()
	h.GenerateItinerary(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Destination or prompt is required"}`, w.Body.String())
}

func TestGenerateItinerary_MalformedBodyRejected(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(`{"destination":`))
	w := httptest.NewRecorder()
	h.GenerateItinerary(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestGenerateItinerary_StreamsFallback(t *testing.T) {
	h := newTestHandler(t)

	body := `{"destination":"Paris","duration":"2","interests":["food"]}`
	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.GenerateItinerary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", w.Header().Get("Connection"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	frames := decodeFrames(t, w.Body)
	tokens, it, metrics := splitFrames(t, frames)

	require.NotEmpty(t, tokens)
	assert.Contains(t, tokens[0], "Paris")

	assert.Equal(t, "Paris", it.Destination)
	assert.Equal(t, "2", it.Duration)
	require.Len(t, it.Days, 3)
	assert.Equal(t, []string{"food"}, it.Interests)

	assert.Equal(t, types.UsageMetrics{PromptTokens: 50, CompletionTokens: 300, TotalTokens: 350}, *metrics)
}

func TestGenerateItinerary_NumericDurationAndBudget(t *testing.T) {
	h := newTestHandler(t)

	body := `{"destination":"Rome","duration":2,"budget":1500}`
	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.GenerateItinerary(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	_, it, _ := splitFrames(t, decodeFrames(t, w.Body))
	assert.Equal(t, "2", it.Duration)
	assert.Equal(t, "1500", it.Budget)
}

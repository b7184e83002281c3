package itinerary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/vachspati/smart--trip/internal/api"
	"github.com/vachspati/smart--trip/internal/types"
)

type Handler struct {
	itineraryService ItineraryService
	logger           *slog.Logger
}

func NewHandler(itineraryService ItineraryService, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItinerary streams an itinerary as newline-terminated JSON frames:
// token frames as generated, then one itinerary frame, then one metrics
// frame. Validation failures answer 400 before any stream header is written.
func (h *Handler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GenerateItinerary").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/generate-itinerary"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateItinerary"))

	var req types.GenerationRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil && !errors.Is(err, api.ErrEmptyBody) {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	streamResp, err := h.itineraryService.GenerateItineraryStream(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDestinationRequired) {
			l.WarnContext(ctx, "Validation failed, destination and prompt both missing")
			api.ErrorResponse(w, r, http.StatusBadRequest, "Destination or prompt is required")
			return
		}
		l.ErrorContext(ctx, "Failed to start generation stream", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Something went wrong!")
		return
	}
	defer streamResp.Cancel()

	l.InfoContext(ctx, "Generating itinerary",
		slog.String("generation_id", streamResp.GenerationID.String()),
		slog.String("destination", req.Destination),
	)

	// Streaming headers are fixed for the remainder of the request.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w) // Encode terminates every frame with \n

	for {
		select {
		case frame, ok := <-streamResp.Stream:
			if !ok {
				l.InfoContext(ctx, "Generation stream closed", slog.String("generation_id", streamResp.GenerationID.String()))
				return
			}
			if err := enc.Encode(frame); err != nil {
				l.WarnContext(ctx, "Failed to write stream frame", slog.Any("error", err))
				return
			}
			if flusher != nil {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Cancel (deferred) stops the generation loop promptly.
			l.InfoContext(ctx, "Client disconnected from itinerary generation",
				slog.String("generation_id", streamResp.GenerationID.String()))
			return
		}
	}
}

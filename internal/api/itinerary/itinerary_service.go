package itinerary

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vachspati/smart--trip/app/observability/metrics"
	"github.com/vachspati/smart--trip/internal/types"
)

// AIClient is the generative-text collaborator. Implementations must be safe
// for concurrent use across requests; substitution with a scripted double is
// how the service is tested.
type AIClient interface {
	GenerateContentStream(ctx context.Context, prompt string) (iter.Seq2[string, error], error)
}

// ItineraryService coordinates one generation: validation, AI streaming with
// fallback recovery, segmentation and metrics estimation.
type ItineraryService interface {
	GenerateItineraryStream(ctx context.Context, req types.GenerationRequest) (*StreamingResponse, error)
}

// StreamingResponse wraps the frame channel and its cancellation handle.
// The channel closes after the final metrics frame.
type StreamingResponse struct {
	GenerationID uuid.UUID
	Stream       <-chan types.StreamFrame
	Cancel       context.CancelFunc
}

type ServiceImpl struct {
	aiClient   AIClient // nil when no AI credential is configured
	fallback   fallbackGenerator
	appMetrics *metrics.AppMetrics // nil disables instrument recording
	logger     *slog.Logger
}

var _ ItineraryService = (*ServiceImpl)(nil)

func NewItineraryService(aiClient AIClient, pacing time.Duration, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		aiClient:   aiClient,
		fallback:   fallbackGenerator{PacingInterval: pacing},
		appMetrics: appMetrics,
		logger:     logger,
	}
}

// GenerateItineraryStream validates the request and, on success, starts the
// generation in a goroutine. Validation errors are returned synchronously so
// the caller can answer 400 before opening the stream.
func (s *ServiceImpl) GenerateItineraryStream(ctx context.Context, req types.GenerationRequest) (*StreamingResponse, error) {
	resolved, err := resolveRequest(req)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithCancel(ctx)
	frameCh := make(chan types.StreamFrame, 16)
	generationID := uuid.New()

	go func() {
		defer close(frameCh)
		s.runGeneration(genCtx, generationID, resolved, frameCh)
	}()

	return &StreamingResponse{
		GenerationID: generationID,
		Stream:       frameCh,
		Cancel:       cancel,
	}, nil
}

func (s *ServiceImpl) runGeneration(ctx context.Context, generationID uuid.UUID, r resolvedRequest, ch chan<- types.StreamFrame) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "runGeneration", trace.WithAttributes(
		attribute.String("generation.id", generationID.String()),
		attribute.String("destination", r.Destination),
	))
	defer span.End()

	l := s.logger.With(
		slog.String("component", "ItineraryService"),
		slog.String("generation_id", generationID.String()),
		slog.String("destination", r.Destination),
	)

	start := time.Now()
	defer func() {
		if s.appMetrics != nil {
			s.appMetrics.GenerationRequestsTotal.Add(ctx, 1)
			s.appMetrics.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}
	}()

	if s.aiClient == nil {
		l.InfoContext(ctx, "No AI credential configured, using fallback generation")
		s.runFallback(ctx, r, ch, l)
		return
	}

	prompt := buildItineraryPrompt(r)
	stream, err := s.aiClient.GenerateContentStream(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		l.WarnContext(ctx, "AI stream failed to start, falling back", slog.Any("error", err))
		s.runFallback(ctx, r, ch, l)
		return
	}

	var fullText strings.Builder
	for chunk, err := range stream {
		if err != nil {
			span.RecordError(err)
			// Token frames already written stay on the stream; the fallback
			// appends its full sequence after them.
			l.WarnContext(ctx, "AI stream error, falling back", slog.Any("error", err))
			s.runFallback(ctx, r, ch, l)
			return
		}
		fullText.WriteString(chunk)
		if !s.sendFrame(ctx, ch, types.TokenFrame(chunk)) {
			return
		}
	}
	if ctx.Err() != nil {
		return
	}

	text := fullText.String()
	it := &types.Itinerary{
		ID:          time.Now().UnixMilli(),
		Destination: r.Destination,
		Duration:    r.Duration,
		Budget:      r.Budget,
		Description: fmt.Sprintf("AI-generated trip to %s", r.Destination),
		FullText:    text,
		Days:        extractDaysFromText(text),
		Interests:   r.interestsCopy(),
	}
	if !s.sendFrame(ctx, ch, types.ItineraryFrame(it)) {
		return
	}
	s.sendFrame(ctx, ch, types.MetricsFrame(estimateUsage(prompt, text)))
	l.InfoContext(ctx, "AI generation completed", slog.Int("full_text_length", len(text)), slog.Int("days", len(it.Days)))
}

// runFallback emits the deterministic fragment sequence, then the hardcoded
// itinerary and fixed metrics.
func (s *ServiceImpl) runFallback(ctx context.Context, r resolvedRequest, ch chan<- types.StreamFrame, l *slog.Logger) {
	if s.appMetrics != nil {
		s.appMetrics.FallbackGenerationsTotal.Add(ctx, 1)
	}

	for _, fragment := range s.fallback.fragments(r) {
		if !s.sendFrame(ctx, ch, types.TokenFrame(fragment)) {
			return
		}
		if !s.pace(ctx) {
			return
		}
	}

	it := &types.Itinerary{
		ID:          time.Now().UnixMilli(),
		Destination: r.Destination,
		Duration:    r.Duration,
		Budget:      r.Budget,
		Description: fmt.Sprintf("A wonderful trip to %s", r.Destination),
		Days:        s.fallback.days(),
		Interests:   r.interestsCopy(),
	}
	if !s.sendFrame(ctx, ch, types.ItineraryFrame(it)) {
		return
	}
	s.sendFrame(ctx, ch, types.MetricsFrame(s.fallback.metrics()))
	l.InfoContext(ctx, "Fallback generation completed")
}

// sendFrame delivers a frame unless the request context is cancelled.
// Returns false when the generation loop should stop.
func (s *ServiceImpl) sendFrame(ctx context.Context, ch chan<- types.StreamFrame, frame types.StreamFrame) bool {
	select {
	case <-ctx.Done():
		s.logger.WarnContext(ctx, "Context cancelled, not sending stream frame")
		return false
	default:
	}
	select {
	case ch <- frame:
		if frame.Token != nil && s.appMetrics != nil {
			s.appMetrics.StreamedTokensTotal.Add(ctx, 1)
		}
		return true
	case <-ctx.Done():
		s.logger.WarnContext(ctx, "Context cancelled while sending stream frame")
		return false
	}
}

// pace waits one PacingInterval between fallback fragments, aborting early on
// cancellation. Returns false when the loop should stop.
func (s *ServiceImpl) pace(ctx context.Context) bool {
	if s.fallback.PacingInterval <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.fallback.PacingInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// estimateUsage derives token metrics from character lengths, roughly four
// characters per token. Estimates only, not tokenizer counts.
func estimateUsage(prompt, completion string) types.UsageMetrics {
	return types.UsageMetrics{
		PromptTokens:     len(prompt) / 4,
		CompletionTokens: len(completion) / 4,
		TotalTokens:      (len(prompt) + len(completion)) / 4,
	}
}

package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vachspati/smart--trip/internal/types"
)

// ErrDestinationRequired is the validation failure for requests carrying
// neither a destination nor a prompt. It must surface before any stream
// headers are written.
var ErrDestinationRequired = errors.New("destination or prompt is required")

const (
	defaultDuration = "3"
	defaultBudget   = "1000"

	defaultInterestsPrompt = "General sightseeing, culture, food"
)

// resolvedRequest is a GenerationRequest after validation and default
// resolution. The decoded request itself is never mutated.
type resolvedRequest struct {
	Destination string
	Duration    string
	Budget      string
	Interests   []string
}

func resolveRequest(req types.GenerationRequest) (resolvedRequest, error) {
	if req.Destination == "" && req.Prompt == "" {
		return resolvedRequest{}, ErrDestinationRequired
	}

	destination := req.Destination
	if destination == "" {
		destination = req.Prompt
	}

	duration := req.Duration.String()
	if duration == "" {
		duration = defaultDuration
	}
	budget := req.Budget.String()
	if budget == "" {
		budget = defaultBudget
	}

	return resolvedRequest{
		Destination: destination,
		Duration:    duration,
		Budget:      budget,
		Interests:   req.Interests,
	}, nil
}

// interestsCopy returns the request interests as a fresh, never-nil slice for
// embedding in the Itinerary result.
func (r resolvedRequest) interestsCopy() []string {
	out := make([]string, len(r.Interests))
	copy(out, r.Interests)
	return out
}

func (r resolvedRequest) interestsOr(fallback string) string {
	if len(r.Interests) == 0 {
		return fallback
	}
	return strings.Join(r.Interests, ", ")
}

// buildItineraryPrompt assembles the travel-planning prompt sent to the
// generative model.
func buildItineraryPrompt(r resolvedRequest) string {
	return fmt.Sprintf(`Create a detailed travel itinerary for: %s

Duration: %s days
Budget: $%s per person
Interests: %s

Please provide:
1. Day-by-day detailed itinerary with specific activities and timings
2. Recommended restaurants and local cuisines
3. Transportation tips
4. Budget breakdown
5. Cultural insights and local tips
6. Weather considerations
7. Packing suggestions

Format the response with clear headings, emojis, and helpful details. Make it engaging and practical.`,
		r.Destination, r.Duration, r.Budget, r.interestsOr(defaultInterestsPrompt))
}

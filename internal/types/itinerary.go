package types

import (
	"encoding/json"
	"fmt"
)

// FlexString is a string that also accepts a JSON number on the wire.
// Clients send duration and budget either as "3" or 3.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be a string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// GenerationRequest is the body of POST /generate-itinerary. All fields are
// optional; validation requires at least one of Destination or Prompt.
type GenerationRequest struct {
	Destination string     `json:"destination,omitempty"`
	Duration    FlexString `json:"duration,omitempty"`
	Budget      FlexString `json:"budget,omitempty"`
	Interests   []string   `json:"interests,omitempty"`
	Prompt      string     `json:"prompt,omitempty"`
}

// DayPlan is one day's slice of an itinerary. Day numbers come from the
// generated text and are not guaranteed contiguous or unique.
type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// Itinerary is the structured result sent once per generation. FullText is
// only set on the AI path; the fallback builds Days directly.
type Itinerary struct {
	ID          int64     `json:"id"`
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	Budget      string    `json:"budget"`
	Description string    `json:"description"`
	FullText    string    `json:"fullText,omitempty"`
	Days        []DayPlan `json:"days"`
	Interests   []string  `json:"interests"`
}

// UsageMetrics carries rough token-usage estimates (character count / 4),
// not exact tokenizer counts.
type UsageMetrics struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// StreamFrame is one newline-terminated JSON object on the generation
// stream. Exactly one field is set, so the marshaled frame has exactly one
// key: {"token":...}, {"itinerary":...} or {"metrics":...}.
type StreamFrame struct {
	Token     *string       `json:"token,omitempty"`
	Itinerary *Itinerary    `json:"itinerary,omitempty"`
	Metrics   *UsageMetrics `json:"metrics,omitempty"`
}

func TokenFrame(text string) StreamFrame {
	return StreamFrame{Token: &text}
}

func ItineraryFrame(it *Itinerary) StreamFrame {
	return StreamFrame{Itinerary: it}
}

func MetricsFrame(m UsageMetrics) StreamFrame {
	return StreamFrame{Metrics: &m}
}

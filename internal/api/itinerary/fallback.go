package itinerary

import (
	"fmt"
	"time"

	"github.com/vachspati/smart--trip/internal/types"
)

const defaultInterestsHighlight = "Cultural sites, outdoor activities"

// fallbackGenerator produces a deterministic itinerary without any external
// service, used when no AI credential is configured and when the AI call
// fails. For identical requests the fragment sequence and day structure are
// byte-identical across invocations; only the itinerary id and timing vary.
type fallbackGenerator struct {
	// PacingInterval is the delay between emitted fragments, simulating
	// streaming latency. Zero disables pacing (tests, non-interactive use).
	PacingInterval time.Duration
}

// fragments is the ordered Token sequence: welcome banner, day-by-day
// narrative built from the request fields, key locations, tips, app
// recommendations and sign-off.
func (g fallbackGenerator) fragments(r resolvedRequest) []string {
	return []string{
		fmt.Sprintf("🏝️ **Welcome to your %s adventure!**\n\n", r.Destination),
		fmt.Sprintf("📅 **%s-Day Itinerary for %s**\n\n", r.Duration, r.Destination),
		fmt.Sprintf("💰 **Budget**: $%s per person\n\n", r.Budget),

		"**Day 1: Arrival & City Exploration**\n",
		"🌅 Morning: Arrive and check into your hotel\n",
		"🏛️ Afternoon: Visit main landmarks and historic sites\n",
		"🍽️ Evening: Try local cuisine at recommended restaurants\n",
		"📍 Must-visit: City center, local markets\n\n",

		"**Day 2: Cultural & Adventure Activities**\n",
		"🎨 Morning: Museums and cultural attractions\n",
		"🏞️ Afternoon: Outdoor activities and nature spots\n",
		"🎭 Evening: Local entertainment and nightlife\n",
		fmt.Sprintf("📍 Highlights: %s\n\n", r.interestsOr(defaultInterestsHighlight)),

		"**Day 3: Local Experiences & Departure**\n",
		"🛍️ Morning: Shopping for local souvenirs\n",
		"☕ Afternoon: Relax at local cafes and final sightseeing\n",
		"✈️ Evening: Departure preparations\n\n",

		"**📍 Key Locations:**\n",
		fmt.Sprintf("• Central Plaza, %s\n", r.Destination),
		fmt.Sprintf("• Historic District, %s\n", r.Destination),
		fmt.Sprintf("• Local Market Square, %s\n", r.Destination),
		fmt.Sprintf("• Scenic Viewpoint, %s\n\n", r.Destination),

		"**💡 Pro Tips:**\n",
		"• Book accommodations in advance\n",
		"• Try local transportation options\n",
		"• Don't forget travel insurance\n",
		"• Learn basic local phrases\n\n",

		"**📱 Useful Apps:**\n",
		"• Google Maps for navigation\n",
		"• Google Translate for communication\n",
		"• Local weather app\n\n",

		fmt.Sprintf("Have an amazing trip to %s! 🎉", r.Destination),
	}
}

// days is the hardcoded structure for the fallback path. It is not derived
// from the emitted text; the fallback never runs the segment parser.
func (g fallbackGenerator) days() []types.DayPlan {
	return []types.DayPlan{
		{Day: 1, Title: "Arrival & City Exploration", Activities: []string{"Check into hotel", "Visit landmarks", "Try local cuisine"}},
		{Day: 2, Title: "Cultural & Adventure Activities", Activities: []string{"Museums", "Outdoor activities", "Local entertainment"}},
		{Day: 3, Title: "Local Experiences & Departure", Activities: []string{"Shopping", "Cafes", "Departure preparations"}},
	}
}

func (g fallbackGenerator) metrics() types.UsageMetrics {
	return types.UsageMetrics{PromptTokens: 50, CompletionTokens: 300, TotalTokens: 350}
}

package itinerary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vachspati/smart--trip/internal/types"
)

// dayHeaderPattern matches emphasized day headers like "**Day 1: Arrival**".
// The title capture is lazy so it stops at the closing markup.
var dayHeaderPattern = regexp.MustCompile(`(?i)\*\*Day (\d+)[:\s]*([^\n]*?)\*\*`)

// activityMarkers are the leading glyphs that identify an activity line
// within a day's segment. Treated as configuration data; extend here rather
// than inlining new pattern literals.
var activityMarkers = []string{
	"🌅", "🏛️", "🍽️", "🎨", "🏞️", "🎭", "🛍️", "☕", "✈️", "📍", "•", "-",
}

const maxActivitiesPerDay = 5

// extractDaysFromText segments generated itinerary text into ordered DayPlan
// records. All headers are collected in one pass and each day's segment runs
// from its header's end to the next header's start, so no header is skipped.
// Days keep text order; duplicate day numbers are not deduplicated.
func extractDaysFromText(text string) []types.DayPlan {
	matches := dayHeaderPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return skeletonDays()
	}

	days := make([]types.DayPlan, 0, len(matches))
	for i, m := range matches {
		dayNumber, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		title := strings.TrimSpace(text[m[4]:m[5]])

		segmentEnd := len(text)
		if i+1 < len(matches) {
			segmentEnd = matches[i+1][0]
		}
		segment := text[m[1]:segmentEnd]

		days = append(days, types.DayPlan{
			Day:        dayNumber,
			Title:      title,
			Activities: extractActivities(segment),
		})
	}
	return days
}

// extractActivities pulls marker-prefixed lines out of a day segment,
// stripping the marker and surrounding whitespace, dropping lines that end
// up empty, and capping at maxActivitiesPerDay in source order.
func extractActivities(segment string) []string {
	activities := []string{}
	for _, line := range strings.Split(segment, "\n") {
		trimmed := strings.TrimSpace(line)
		marker, ok := leadingMarker(trimmed)
		if !ok {
			continue
		}
		activity := strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		if activity == "" {
			continue
		}
		activities = append(activities, activity)
		if len(activities) == maxActivitiesPerDay {
			break
		}
	}
	return activities
}

func leadingMarker(line string) (string, bool) {
	for _, marker := range activityMarkers {
		if strings.HasPrefix(line, marker) {
			return marker, true
		}
	}
	return "", false
}

// skeletonDays is the substitute structure for text without any recognizable
// day headers. Not an error condition.
func skeletonDays() []types.DayPlan {
	return []types.DayPlan{
		{Day: 1, Title: "Arrival & Exploration", Activities: []string{"Check-in", "City tour", "Local dining"}},
		{Day: 2, Title: "Adventure & Culture", Activities: []string{"Museums", "Activities", "Entertainment"}},
		{Day: 3, Title: "Relaxation & Departure", Activities: []string{"Shopping", "Cafes", "Check-out"}},
	}
}

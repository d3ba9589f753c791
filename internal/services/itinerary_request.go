package services

import (
	"itinerary-planner/internal/domain"
	"strings"
)

const (
	DefaultDurationDays = 3
	MaxDurationDays     = 30
	DefaultBudget       = 2000
)

// ItineraryInput is the raw trip request as received from a caller.
// Zero values mean "not provided".
type ItineraryInput struct {
	CityID         int
	Destination    string
	DurationDays   int
	Pacing         string
	Budget         int
	CategoryFilter string
	Strategy       string
	Seed           uint64
}

// ItineraryRequest is a normalized ItineraryInput. Every field holds a
// usable value.
type ItineraryRequest struct {
	CityID         int
	Destination    string
	DurationDays   int
	Pacing         domain.Pacing
	Budget         int
	CategoryFilter string
	Strategy       string
	Seed           uint64
}

// NormalizeItineraryRequest applies the documented fallbacks instead of
// rejecting input: duration 3, Balanced pacing, budget 2000 and the
// nearest-neighbor strategy. Durations above MaxDurationDays are clamped.
// It never fails.
func NormalizeItineraryRequest(in ItineraryInput) ItineraryRequest {
	duration := in.DurationDays
	if duration <= 0 {
		duration = DefaultDurationDays
	}
	if duration > MaxDurationDays {
		duration = MaxDurationDays
	}

	budget := in.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}

	return ItineraryRequest{
		CityID:         in.CityID,
		Destination:    strings.TrimSpace(in.Destination),
		DurationDays:   duration,
		Pacing:         domain.ParsePacing(in.Pacing),
		Budget:         budget,
		CategoryFilter: strings.TrimSpace(in.CategoryFilter),
		Strategy:       ParseStrategy(in.Strategy),
		Seed:           in.Seed,
	}
}

// FilterByCategory keeps attractions whose category matches, ignoring case.
// An empty category keeps everything.
func FilterByCategory(attractions []domain.Attraction, category string) []domain.Attraction {
	category = strings.TrimSpace(category)
	if category == "" {
		return append([]domain.Attraction(nil), attractions...)
	}

	out := make([]domain.Attraction, 0, len(attractions))
	for _, a := range attractions {
		if strings.EqualFold(strings.TrimSpace(a.Category), category) {
			out = append(out, a)
		}
	}
	return out
}

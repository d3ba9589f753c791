package services

import (
	"fmt"
	"itinerary-planner/internal/domain"
	"strings"
)

const (
	firstDayStartHour = 11
	dayStartHour      = 9
	visitHours        = 3
	noonHour          = 12
	lunchHour         = 13
	afterLunchHour    = 14
	arrivalHour       = 9
	dinnerHour        = 19
)

var categoryIcons = map[string]string{
	"heritage":  "landmark",
	"monument":  "landmark",
	"museum":    "university",
	"nature":    "tree",
	"religious": "praying-hands",
	"spiritual": "praying-hands",
	"adventure": "hiking",
	"food":      "utensils",
	"shopping":  "shopping-bag",
	"market":    "shopping-bag",
	"beach":     "umbrella-beach",
	"scenic":    "water",
	"leisure":   "coffee",
}

// GenerateItinerary builds a day-by-day plan from a normalized request.
//
// The strategy arranges the attraction set, which is then cut into
// consecutive day buckets sized by pacing. Each bucket is routed by the
// strategy and laid out on a fixed clock: day 1 starts at 11:00 after an
// arrival at 09:00, other days at 09:00, each visit takes three hours,
// lunch follows the first visit once the clock passes noon, and every
// day but the last ends with dinner at 19:00. A day with no attractions
// holds a single free-exploration placeholder.
//
// restaurants is optional and only names the lunch stop.
func GenerateItinerary(
	req ItineraryRequest,
	attractions []domain.Attraction,
	restaurants []string,
	strategy RouteStrategy,
) *domain.Itinerary {
	if strategy == nil {
		strategy = NearestNeighborStrategy{}
	}

	totalDays := req.DurationDays
	if totalDays <= 0 {
		totalDays = DefaultDurationDays
	}
	if totalDays > MaxDurationDays {
		totalDays = MaxDurationDays
	}

	destination := req.Destination
	if destination == "" {
		destination = "the City"
	}

	buckets := AssignAttractionsToDays(strategy.Arrange(attractions), totalDays, req.Pacing.ItemsPerDay())

	days := make([]domain.DayPlan, 0, totalDays)
	totalDistance := 0.0

	for i, bucket := range buckets {
		day := i + 1
		plan := domain.DayPlan{
			Day:       day,
			Title:     dayTitle(day, totalDays, destination),
			TimeOfDay: timeOfDay(day, totalDays),
		}

		clock := dayStartHour
		if day == 1 {
			clock = firstDayStartHour
		}

		if len(bucket) == 0 {
			plan.Activities = []domain.Activity{freeExploration(clock)}
			days = append(days, plan)
			continue
		}

		tour := strategy.Route(bucket)
		plan.DistanceKm = roundTo(tour.TotalDistanceKm, 1)
		totalDistance += tour.TotalDistanceKm

		activities := make([]domain.Activity, 0, len(tour.Stops)+3)
		if day == 1 {
			activities = append(activities, domain.Activity{
				Kind:        domain.ActivityArrival,
				Hour:        arrivalHour,
				Time:        formatHour(arrivalHour),
				Title:       "Arrive at " + destination,
				Description: "Check into hotel and freshen up",
				Icon:        "clock",
			})
		}

		for idx, stop := range tour.Stops {
			activities = append(activities, visit(clock, stop))
			clock += visitHours

			if idx == 0 && clock > noonHour {
				activities = append(activities, domain.Activity{
					Kind:        domain.ActivityLunch,
					Hour:        lunchHour,
					Time:        formatHour(lunchHour),
					Title:       lunchTitle(day, restaurants),
					Description: "Try local cuisine and specialties",
					Icon:        "utensils",
				})
				clock = afterLunchHour
			}
		}

		if day < totalDays {
			activities = append(activities, domain.Activity{
				Kind:        domain.ActivityDinner,
				Hour:        dinnerHour,
				Time:        formatHour(dinnerHour),
				Title:       "Dinner & Leisure",
				Description: "Explore local markets and enjoy dinner",
				Icon:        "moon",
			})
		}

		plan.Activities = activities
		days = append(days, plan)
	}

	return &domain.Itinerary{
		CityID:          req.CityID,
		Destination:     destination,
		DurationDays:    totalDays,
		Pacing:          req.Pacing,
		Strategy:        strategy.Name(),
		Budget:          req.Budget,
		BudgetPerDay:    req.Budget / totalDays,
		Days:            days,
		TotalDistanceKm: roundTo(totalDistance, 1),
	}
}

func visit(hour int, stop domain.TourStop) domain.Activity {
	a := stop.Attraction

	desc := strings.TrimSpace(a.Description)
	if desc == "" {
		category := strings.ToLower(strings.TrimSpace(a.Category))
		if category == "" {
			desc = "Visit this attraction"
		} else {
			desc = "Visit this " + category + " attraction"
		}
	}
	if d := strings.TrimSpace(a.Duration); d != "" {
		desc += " (" + d + ")"
	}
	if stop.LegDistanceKm != nil {
		desc += fmt.Sprintf(" • %.1fkm from previous stop", *stop.LegDistanceKm)
	}

	return domain.Activity{
		Kind:        domain.ActivityVisit,
		Hour:        hour,
		Time:        formatHour(hour),
		Title:       a.Name,
		Description: desc,
		Icon:        CategoryIcon(a.Category),
		Category:    a.Category,
		EntryFee:    a.EntryFee,
	}
}

func freeExploration(hour int) domain.Activity {
	return domain.Activity{
		Kind:        domain.ActivityFreeTime,
		Hour:        hour,
		Time:        formatHour(hour),
		Title:       "Local Exploration",
		Description: "Explore the local markets and streets at your own pace.",
		Icon:        CategoryIcon("Leisure"),
		Category:    "Leisure",
	}
}

func lunchTitle(day int, restaurants []string) string {
	if len(restaurants) == 0 {
		return "Lunch Break"
	}
	return "Lunch at " + restaurants[day%len(restaurants)]
}

func dayTitle(day, totalDays int, destination string) string {
	switch {
	case day == 1:
		return "Arrival & " + destination + " Tour"
	case day == totalDays:
		return "Final Exploration & Departure"
	case day == 2:
		return "Heritage Sites"
	case day == 3:
		return "Cultural Experience"
	default:
		return fmt.Sprintf("Day %d Exploration", day)
	}
}

func timeOfDay(day, totalDays int) string {
	switch {
	case day == 1:
		return "Morning to Evening"
	case day == totalDays:
		return "Morning to Afternoon"
	default:
		return "Full Day"
	}
}

// CategoryIcon maps an attraction category to an icon name.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(strings.TrimSpace(category))]; ok {
		return icon
	}
	return "map-marker-alt"
}

// formatHour renders a 24h hour as "9:00 AM" / "2:00 PM".
func formatHour(hour int) string {
	h := hour % 24
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, period)
}

package services

import (
	"fmt"
	"itinerary-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delhiAttractions() []domain.Attraction {
	return []domain.Attraction{
		{Name: "Red Fort", Category: "Heritage", Duration: "2-3 hours", Coordinates: &domain.Coordinates{Lat: 28.6562, Lon: 77.2410}},
		{Name: "Chandni Chowk", Category: "Market", Duration: "2-3 hours", Coordinates: &domain.Coordinates{Lat: 28.6506, Lon: 77.2303}},
		{Name: "India Gate", Category: "Monument", Duration: "1 hour", Coordinates: &domain.Coordinates{Lat: 28.6129, Lon: 77.2295}},
		{Name: "Connaught Place", Category: "Shopping", Duration: "2 hours", Coordinates: &domain.Coordinates{Lat: 28.6315, Lon: 77.2167}},
		{Name: "Humayun's Tomb", Category: "Heritage", Duration: "1-2 hours", Coordinates: &domain.Coordinates{Lat: 28.5933, Lon: 77.2507}},
		{Name: "Qutub Minar", Category: "Heritage", Duration: "1-2 hours", Coordinates: &domain.Coordinates{Lat: 28.5244, Lon: 77.1855}},
		{Name: "Lotus Temple", Category: "Spiritual", Duration: "1-2 hours", Coordinates: &domain.Coordinates{Lat: 28.5535, Lon: 77.2588}},
		{Name: "Akshardham Temple", Category: "Spiritual", Duration: "2-3 hours", Coordinates: &domain.Coordinates{Lat: 28.6127, Lon: 77.2773}},
	}
}

func request(days int, pacing domain.Pacing) ItineraryRequest {
	return ItineraryRequest{
		Destination:  "Delhi",
		DurationDays: days,
		Pacing:       pacing,
		Budget:       3000,
		Strategy:     StrategyNearestNeighbor,
	}
}

func kinds(plan domain.DayPlan) []domain.ActivityKind {
	out := make([]domain.ActivityKind, 0, len(plan.Activities))
	for _, a := range plan.Activities {
		out = append(out, a.Kind)
	}
	return out
}

func TestGenerateItineraryDayCoverage(t *testing.T) {
	for _, poiCount := range []int{0, 1, 5, 50} {
		attractions := make([]domain.Attraction, 0, poiCount)
		for i := 0; i < poiCount; i++ {
			attractions = append(attractions, at(fmt.Sprintf("poi-%d", i), float64(i)*0.01, 77))
		}

		for days := 1; days <= 7; days++ {
			it := GenerateItinerary(request(days, domain.PacingBalanced), attractions, nil, nil)

			require.Len(t, it.Days, days, "pois=%d days=%d", poiCount, days)
			for i, d := range it.Days {
				assert.Equal(t, i+1, d.Day)
				assert.NotEmpty(t, d.Activities, "pois=%d days=%d day=%d", poiCount, days, d.Day)
			}
		}
	}
}

func TestGenerateItineraryPacing(t *testing.T) {
	cases := []struct {
		pacing domain.Pacing
		want   int
	}{
		{domain.PacingRelaxed, 2},
		{domain.PacingBalanced, 3},
		{domain.PacingAdventurePacked, 4},
		{domain.ParsePacing("whatever"), 3},
	}

	for _, tc := range cases {
		it := GenerateItinerary(request(2, tc.pacing), delhiAttractions(), nil, nil)
		for _, d := range it.Days {
			assert.Equal(t, tc.want, d.Visits(), "pacing=%s day=%d", tc.pacing, d.Day)
		}
	}
}

func TestGenerateItineraryUnevenLastDay(t *testing.T) {
	it := GenerateItinerary(request(3, domain.PacingBalanced), delhiAttractions(), nil, nil)

	require.Len(t, it.Days, 3)
	assert.Equal(t, 3, it.Days[0].Visits())
	assert.Equal(t, 3, it.Days[1].Visits())
	assert.Equal(t, 2, it.Days[2].Visits())

	last := it.Days[2]
	assert.Equal(t, []domain.ActivityKind{domain.ActivityVisit, domain.ActivityVisit}, kinds(last))
	assert.Equal(t, "Qutub Minar", last.Activities[0].Title)
	assert.Equal(t, "Lotus Temple", last.Activities[1].Title)

	want := HaversineKm(domain.Coordinates{Lat: 28.5244, Lon: 77.1855}, domain.Coordinates{Lat: 28.5535, Lon: 77.2588})
	assert.InDelta(t, want, last.DistanceKm, 0.05)
	assert.Contains(t, last.Activities[1].Description, "km from previous stop")
}

func TestGenerateItineraryNoAttractions(t *testing.T) {
	it := GenerateItinerary(request(2, domain.PacingBalanced), nil, nil, nil)

	require.Len(t, it.Days, 2)
	for _, d := range it.Days {
		require.Len(t, d.Activities, 1)
		assert.Equal(t, domain.ActivityFreeTime, d.Activities[0].Kind)
		assert.Equal(t, "Local Exploration", d.Activities[0].Title)
		assert.Zero(t, d.DistanceKm)
	}
	assert.Equal(t, 11, it.Days[0].Activities[0].Hour)
	assert.Equal(t, 9, it.Days[1].Activities[0].Hour)
}

func TestGenerateItineraryTimeSlots(t *testing.T) {
	it := GenerateItinerary(request(3, domain.PacingBalanced), delhiAttractions(), []string{"Karim's", "Saravana Bhavan"}, nil)

	day1 := it.Days[0]
	assert.Equal(t, []domain.ActivityKind{
		domain.ActivityArrival,
		domain.ActivityVisit,
		domain.ActivityLunch,
		domain.ActivityVisit,
		domain.ActivityVisit,
		domain.ActivityDinner,
	}, kinds(day1))

	hours := make([]int, 0, len(day1.Activities))
	for _, a := range day1.Activities {
		hours = append(hours, a.Hour)
	}
	assert.Equal(t, []int{9, 11, 13, 14, 17, 19}, hours)
	assert.Equal(t, "9:00 AM", day1.Activities[0].Time)
	assert.Equal(t, "11:00 AM", day1.Activities[1].Time)
	assert.Equal(t, "1:00 PM", day1.Activities[2].Time)
	assert.Equal(t, "Arrive at Delhi", day1.Activities[0].Title)
	assert.Equal(t, "Lunch at Saravana Bhavan", day1.Activities[2].Title)

	// Day 2 starts at 09:00; the clock reaches exactly noon after the first
	// visit, so there is no lunch stop.
	day2 := it.Days[1]
	assert.Equal(t, []domain.ActivityKind{
		domain.ActivityVisit,
		domain.ActivityVisit,
		domain.ActivityVisit,
		domain.ActivityDinner,
	}, kinds(day2))
	assert.Equal(t, 9, day2.Activities[0].Hour)
	assert.Equal(t, 12, day2.Activities[1].Hour)
	assert.Equal(t, "12:00 PM", day2.Activities[1].Time)
	assert.Equal(t, 15, day2.Activities[2].Hour)

	last := it.Days[2]
	assert.NotContains(t, kinds(last), domain.ActivityDinner)
}

func TestGenerateItineraryTitles(t *testing.T) {
	it := GenerateItinerary(request(5, domain.PacingRelaxed), delhiAttractions(), nil, nil)

	assert.Equal(t, "Arrival & Delhi Tour", it.Days[0].Title)
	assert.Equal(t, "Heritage Sites", it.Days[1].Title)
	assert.Equal(t, "Cultural Experience", it.Days[2].Title)
	assert.Equal(t, "Day 4 Exploration", it.Days[3].Title)
	assert.Equal(t, "Final Exploration & Departure", it.Days[4].Title)

	assert.Equal(t, "Morning to Evening", it.Days[0].TimeOfDay)
	assert.Equal(t, "Full Day", it.Days[2].TimeOfDay)
	assert.Equal(t, "Morning to Afternoon", it.Days[4].TimeOfDay)

	single := GenerateItinerary(request(1, domain.PacingRelaxed), delhiAttractions(), nil, nil)
	assert.Equal(t, "Arrival & Delhi Tour", single.Days[0].Title)
	assert.NotContains(t, kinds(single.Days[0]), domain.ActivityDinner)
}

func TestGenerateItineraryVisitDetails(t *testing.T) {
	attractions := []domain.Attraction{
		{Name: "Fort Aguada", Category: "Heritage", Duration: "1-2 hours", EntryFee: 50, Coordinates: &domain.Coordinates{Lat: 15.4909, Lon: 73.7732}},
		{Name: "Calangute Beach", Category: "Beach", Description: "Queen of beaches.", Coordinates: &domain.Coordinates{Lat: 15.5440, Lon: 73.7551}},
	}

	it := GenerateItinerary(request(1, domain.PacingRelaxed), attractions, nil, nil)
	acts := it.Days[0].Activities

	fort := acts[1]
	assert.Equal(t, "Visit this heritage attraction (1-2 hours)", fort.Description)
	assert.Equal(t, "landmark", fort.Icon)
	assert.Equal(t, 50, fort.EntryFee)

	beach := acts[3]
	assert.Equal(t, "Calangute Beach", beach.Title)
	assert.Regexp(t, `^Queen of beaches\. • \d+\.\dkm from previous stop$`, beach.Description)
	assert.Equal(t, "umbrella-beach", beach.Icon)
}

func TestGenerateItineraryBudgetAndTotals(t *testing.T) {
	it := GenerateItinerary(request(3, domain.PacingBalanced), delhiAttractions(), nil, nil)

	assert.Equal(t, 1000, it.BudgetPerDay)
	assert.Equal(t, StrategyNearestNeighbor, it.Strategy)

	sum := 0.0
	for _, d := range it.Days {
		sum += d.DistanceKm
	}
	assert.InDelta(t, sum, it.TotalDistanceKm, 0.2)
}

func TestGenerateItineraryDefaultsDuration(t *testing.T) {
	it := GenerateItinerary(ItineraryRequest{Pacing: domain.PacingBalanced}, nil, nil, nil)
	assert.Len(t, it.Days, DefaultDurationDays)
}

func TestGenerateItineraryDurationAppendedToDescription(t *testing.T) {
	attractions := []domain.Attraction{
		{Name: "Dudhsagar Falls", Category: "Nature", Description: "Four-tiered waterfall.", Duration: "4-5 hours"},
		{Name: "Chapora Fort", Category: "Heritage"},
	}

	it := GenerateItinerary(request(1, domain.PacingRelaxed), attractions, nil, nil)
	acts := it.Days[0].Activities

	assert.Equal(t, "Four-tiered waterfall. (4-5 hours)", acts[1].Description)
	assert.Equal(t, "Visit this heritage attraction", acts[3].Description)
}

func TestGenerateItineraryClampsDuration(t *testing.T) {
	req := request(2_000_000_000, domain.PacingBalanced)

	it := GenerateItinerary(req, delhiAttractions(), nil, nil)
	assert.Equal(t, MaxDurationDays, it.DurationDays)
	assert.Len(t, it.Days, MaxDurationDays)
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "12:00 AM", formatHour(0))
	assert.Equal(t, "9:00 AM", formatHour(9))
	assert.Equal(t, "12:00 PM", formatHour(12))
	assert.Equal(t, "8:00 PM", formatHour(20))
}

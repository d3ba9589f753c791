package services

import "itinerary-planner/internal/domain"

// AssignAttractionsToDays splits attractions into consecutive, non-overlapping
// buckets of perDay, one per day.
//
// The result always has exactly days buckets. Days past the end of the
// attraction set get an empty bucket, and attractions beyond days*perDay
// are left unscheduled.
func AssignAttractionsToDays(attractions []domain.Attraction, days, perDay int) [][]domain.Attraction {
	if days < 0 {
		days = 0
	}
	if perDay < 1 {
		perDay = 1
	}

	buckets := make([][]domain.Attraction, days)
	n := len(attractions)

	for d := 0; d < days; d++ {
		start := d * perDay
		if start >= n {
			buckets[d] = []domain.Attraction{}
			continue
		}

		end := start + perDay
		if end > n {
			end = n
		}
		buckets[d] = attractions[start:end:end]
	}

	return buckets
}

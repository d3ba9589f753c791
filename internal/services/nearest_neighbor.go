package services

import (
	"itinerary-planner/internal/domain"
	"math"
	"slices"
)

// Order attractions for a single outing using a greedy nearest-neighbor algorithm.
//
// The first attraction is always the start; it is never reselected.
// Each step moves to the closest unvisited attraction, and equal distances
// resolve to the earliest one in input order. The algorithm does not
// attempt global tour optimization; determinism and simplicity win over
// optimality.
//
// Attractions without coordinates are never chosen by distance. Once the
// current stop is unlocated, or only unlocated attractions remain, the
// remainder is appended in its original order. Legs touching an unlocated
// attraction add nothing to the total.
func BuildTour(points []domain.Attraction) domain.Tour {
	tour, _ := buildTour(points)
	return tour
}

// buildTour also returns the input index of each stop.
func buildTour(points []domain.Attraction) (domain.Tour, []int) {
	coords := make([]*domain.Coordinates, len(points))
	for i, p := range points {
		coords[i] = p.Coordinates
	}

	order, legs, total := nearestNeighborOrder(coords)

	stops := make([]domain.TourStop, 0, len(points))
	for i, idx := range order {
		stops = append(stops, domain.TourStop{
			Attraction:    points[idx],
			LegDistanceKm: legs[i],
		})
	}

	return domain.Tour{Stops: stops, TotalDistanceKm: total}, order
}

// TourFromOrder measures attractions in the order given, without reordering.
func TourFromOrder(points []domain.Attraction) domain.Tour {
	stops := make([]domain.TourStop, 0, len(points))
	total := 0.0

	for i, p := range points {
		stop := domain.TourStop{Attraction: p}
		if i > 0 && p.Located() && points[i-1].Located() {
			leg := HaversineKm(*points[i-1].Coordinates, *p.Coordinates)
			stop.LegDistanceKm = &leg
			total += leg
		}
		stops = append(stops, stop)
	}

	return domain.Tour{Stops: stops, TotalDistanceKm: total}
}

// nearestNeighborOrder returns the visiting order as input indices, the leg
// distance into each position of that order (nil when there is no real
// leg) and the total distance.
func nearestNeighborOrder(coords []*domain.Coordinates) ([]int, []*float64, float64) {
	n := len(coords)
	order := make([]int, 0, n)
	legs := make([]*float64, 0, n)

	if n == 0 {
		return order, legs, 0
	}

	remaining := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		remaining = append(remaining, i)
	}

	current := 0
	order = append(order, current)
	legs = append(legs, nil)
	total := 0.0

	for len(remaining) > 0 && coords[current] != nil {
		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum distance (greedy step).
		for pos, idx := range remaining {
			if coords[idx] == nil {
				continue
			}
			d := HaversineKm(*coords[current], *coords[idx])
			// Strict comparison keeps the earliest candidate on ties.
			if d < minDistance {
				minDistance = d
				best = pos
			}
		}

		if best < 0 {
			break
		}

		leg := minDistance
		current = remaining[best]
		order = append(order, current)
		legs = append(legs, &leg)
		total += leg

		remaining = slices.Delete(remaining, best, best+1)
	}

	for _, idx := range remaining {
		order = append(order, idx)
		legs = append(legs, nil)
	}

	return order, legs, total
}

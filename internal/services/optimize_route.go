package services

import "itinerary-planner/internal/domain"

// RouteResult is an optimized visiting order over arbitrary points.
// RouteOrder holds the input index of each stop.
type RouteResult struct {
	Tour            domain.Tour
	RouteOrder      []int
	TotalDistanceKm float64
}

// OptimizeRoute orders points with the nearest-neighbor heuristic starting
// from the first one. The total is rounded to two decimals.
func OptimizeRoute(points []domain.Attraction) RouteResult {
	tour, order := buildTour(points)

	return RouteResult{
		Tour:            tour,
		RouteOrder:      order,
		TotalDistanceKm: roundTo(tour.TotalDistanceKm, 2),
	}
}

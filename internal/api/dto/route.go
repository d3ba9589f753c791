package dto

import (
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/services"
)

type RoutePoint struct {
	Name      string   `json:"name" validate:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type OptimizeRouteRequest struct {
	Points []RoutePoint `json:"points" validate:"required,min=1,max=100,dive"`
}

// Attractions maps the points onto attractions; points with missing or
// out-of-range coordinates become unlocated.
func (r OptimizeRouteRequest) Attractions() []domain.Attraction {
	out := make([]domain.Attraction, 0, len(r.Points))
	for _, p := range r.Points {
		out = append(out, domain.Attraction{
			Name:        p.Name,
			Coordinates: domain.NewCoordinates(p.Latitude, p.Longitude),
		})
	}
	return out
}

type RouteStopResponse struct {
	Name          string   `json:"name"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	LegDistanceKm *float64 `json:"leg_distance_km"`
}

type OptimizeRouteResponse struct {
	Route           []RouteStopResponse `json:"route"`
	RouteOrder      []int               `json:"route_order"`
	TotalDistanceKm float64             `json:"total_distance_km"`
}

func NewOptimizeRouteResponse(res services.RouteResult) OptimizeRouteResponse {
	out := OptimizeRouteResponse{
		Route:           make([]RouteStopResponse, 0, len(res.Tour.Stops)),
		RouteOrder:      res.RouteOrder,
		TotalDistanceKm: res.TotalDistanceKm,
	}
	if out.RouteOrder == nil {
		out.RouteOrder = []int{}
	}

	for _, s := range res.Tour.Stops {
		stop := RouteStopResponse{
			Name:          s.Attraction.Name,
			LegDistanceKm: s.LegDistanceKm,
		}
		if c := s.Attraction.Coordinates; c != nil {
			lat, lon := c.Lat, c.Lon
			stop.Latitude, stop.Longitude = &lat, &lon
		}
		out.Route = append(out.Route, stop)
	}

	return out
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

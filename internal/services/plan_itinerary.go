package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/platform/obs"
	"itinerary-planner/internal/ports"

	"github.com/google/uuid"
)

// PlanItinerary fetches the requested city and generates its itinerary.
//
// The category filter is applied to the attraction set before it is split
// into days. The destination defaults to the city's name. The returned
// itinerary carries a fresh id.
func PlanItinerary(
	ctx context.Context,
	req ItineraryRequest,
	source ports.CitySource,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "services.PlanItinerary")(&err)

	if source == nil {
		return nil, errors.New("plan itinerary: city source must be non-nil")
	}

	city, err := source.GetCity(ctx, req.CityID)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: get city %d: %w", req.CityID, err)
	}
	if city == nil {
		return nil, fmt.Errorf("plan itinerary: city %d: %w", req.CityID, ports.ErrCityNotFound)
	}

	if req.Destination == "" {
		req.Destination = city.Name
	}

	attractions := FilterByCategory(city.Attractions, req.CategoryFilter)
	strategy := NewRouteStrategy(req.Strategy, req.Seed)

	itinerary := GenerateItinerary(req, attractions, city.Restaurants, strategy)
	itinerary.ID = uuid.NewString()
	itinerary.CityID = city.ID

	return itinerary, nil
}

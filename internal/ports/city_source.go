package ports

import (
	"context"
	"errors"
	"itinerary-planner/internal/domain"
)

// ErrCityNotFound is returned by a CitySource when the city id is unknown.
var ErrCityNotFound = errors.New("city not found")

// Port: a boundary for retrieving cities and their attractions.
type CitySource interface {
	// Return the city with its full attraction set.
	GetCity(ctx context.Context, cityID int) (*domain.City, error)
}

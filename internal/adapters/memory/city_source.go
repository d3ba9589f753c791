package memory

import (
	"context"
	"fmt"
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/ports"
	"slices"
	"strings"
)

// CitySource serves cities from a fixed in-memory set.
// It backs offline runs from a seed file and tests.
type CitySource struct {
	cities map[int]domain.City
}

func NewCitySource(cities []domain.City) *CitySource {
	m := make(map[int]domain.City, len(cities))
	for _, c := range cities {
		m[c.ID] = c
	}
	return &CitySource{cities: m}
}

func (s *CitySource) GetCity(ctx context.Context, cityID int) (*domain.City, error) {
	c, ok := s.cities[cityID]
	if !ok {
		return nil, fmt.Errorf("memory city source: city %d: %w", cityID, ports.ErrCityNotFound)
	}

	c.Attractions = slices.Clone(c.Attractions)
	c.Restaurants = slices.Clone(c.Restaurants)
	return &c, nil
}

func (s *CitySource) ListCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range s.cities {
		for _, a := range c.Attractions {
			cat := strings.TrimSpace(a.Category)
			if cat == "" {
				continue
			}
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	slices.Sort(out)
	return out, nil
}

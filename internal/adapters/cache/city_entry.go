package cache

import "itinerary-planner/internal/domain"

// Cached JSON shape of a city. Kept separate from the domain types so the
// payload format does not drift when domain fields change.
type cityEntry struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	State       string            `json:"state,omitempty"`
	Region      string            `json:"region,omitempty"`
	Description string            `json:"description,omitempty"`
	Coordinates *coordsEntry      `json:"coordinates,omitempty"`
	Attractions []attractionEntry `json:"attractions"`
	Restaurants []string          `json:"restaurants,omitempty"`
}

type attractionEntry struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category,omitempty"`
	Description  string       `json:"description,omitempty"`
	Duration     string       `json:"duration,omitempty"`
	OpeningHours string       `json:"opening_hours,omitempty"`
	EntryFee     int          `json:"entry_fee"`
	Rating       float64      `json:"rating"`
	Coordinates  *coordsEntry `json:"coordinates,omitempty"`
}

type coordsEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newCoordsEntry(c *domain.Coordinates) *coordsEntry {
	if c == nil {
		return nil
	}
	return &coordsEntry{Lat: c.Lat, Lon: c.Lon}
}

func (c *coordsEntry) toDomain() *domain.Coordinates {
	if c == nil {
		return nil
	}
	return domain.NewCoordinates(&c.Lat, &c.Lon)
}

func newCityEntry(city *domain.City) cityEntry {
	e := cityEntry{
		ID:          city.ID,
		Name:        city.Name,
		State:       city.State,
		Region:      city.Region,
		Description: city.Description,
		Coordinates: newCoordsEntry(city.Coordinates),
		Attractions: make([]attractionEntry, 0, len(city.Attractions)),
		Restaurants: city.Restaurants,
	}
	for _, a := range city.Attractions {
		e.Attractions = append(e.Attractions, attractionEntry{
			ID:           a.ID,
			Name:         a.Name,
			Category:     a.Category,
			Description:  a.Description,
			Duration:     a.Duration,
			OpeningHours: a.OpeningHours,
			EntryFee:     a.EntryFee,
			Rating:       a.Rating,
			Coordinates:  newCoordsEntry(a.Coordinates),
		})
	}
	return e
}

func (e cityEntry) toDomain() *domain.City {
	city := &domain.City{
		ID:          e.ID,
		Name:        e.Name,
		State:       e.State,
		Region:      e.Region,
		Description: e.Description,
		Coordinates: e.Coordinates.toDomain(),
		Attractions: make([]domain.Attraction, 0, len(e.Attractions)),
		Restaurants: e.Restaurants,
	}
	for _, a := range e.Attractions {
		city.Attractions = append(city.Attractions, domain.Attraction{
			ID:           a.ID,
			Name:         a.Name,
			Category:     a.Category,
			Description:  a.Description,
			Duration:     a.Duration,
			OpeningHours: a.OpeningHours,
			EntryFee:     a.EntryFee,
			Rating:       a.Rating,
			Coordinates:  a.Coordinates.toDomain(),
		})
	}
	return city
}

package domain

import "math"

// Immutable geographic coordinates (longitude, latitude) in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Valid reports whether both components are finite and inside the
// latitude/longitude ranges.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Build coordinates from optional source fields.
// Returns nil when either component is absent or malformed, so callers
// can treat the point as unlocated instead of sitting at (0, 0).
func NewCoordinates(lat, lon *float64) *Coordinates {
	if lat == nil || lon == nil {
		return nil
	}

	c := Coordinates{Lat: *lat, Lon: *lon}
	if !c.Valid() {
		return nil
	}
	return &c
}

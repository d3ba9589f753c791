package domain

// A single stop in a tour.
// LegDistanceKm is the distance from the previous stop; it is nil for the
// first stop and for any leg touching an unlocated attraction.
type TourStop struct {
	Attraction    Attraction
	LegDistanceKm *float64
}

// Represents an ordered visiting sequence and its travel distance.
// A tour of N stops has N-1 legs. TotalDistanceKm is the unrounded sum
// of all real legs.
type Tour struct {
	Stops           []TourStop
	TotalDistanceKm float64
}

// Attractions returns the stops in visiting order.
func (t Tour) Attractions() []Attraction {
	out := make([]Attraction, 0, len(t.Stops))
	for _, s := range t.Stops {
		out = append(out, s.Attraction)
	}
	return out
}

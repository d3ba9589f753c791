package domain

// Represents a point of interest inside a city.
// Name is the identity within a city's attraction set. Category is a
// free-form tag used for labelling and filtering only; it never affects
// ordering. Duration is a display hint ("2-3 hours") and is not used in
// scheduling math. Coordinates is nil when the source had no usable
// location.
type Attraction struct {
	ID           int
	Name         string
	Category     string
	Description  string
	Duration     string
	OpeningHours string
	EntryFee     int
	Rating       float64
	Coordinates  *Coordinates
}

// Located reports whether the attraction can take part in distance
// comparisons.
func (a Attraction) Located() bool {
	return a.Coordinates != nil
}

// A destination city together with its attraction set.
// Restaurants is optional and only feeds lunch titles.
type City struct {
	ID          int
	Name        string
	State       string
	Region      string
	Description string
	Coordinates *Coordinates
	Attractions []Attraction
	Restaurants []string
}

package domain

type ActivityKind string

const (
	ActivityVisit    ActivityKind = "visit"
	ActivityArrival  ActivityKind = "arrival"
	ActivityLunch    ActivityKind = "lunch"
	ActivityDinner   ActivityKind = "dinner"
	ActivityFreeTime ActivityKind = "free_time"
)

// One entry in a day plan: either an attraction visit or a synthetic
// event. Hour is on a 24h clock; Time is its display form.
type Activity struct {
	Kind        ActivityKind
	Hour        int
	Time        string
	Title       string
	Description string
	Icon        string
	Category    string
	EntryFee    int
}

// One day of an itinerary.
// DistanceKm covers legs between consecutive visits only and is rounded
// to 0.1 km.
type DayPlan struct {
	Day        int
	Title      string
	TimeOfDay  string
	Activities []Activity
	DistanceKm float64
}

// Visits returns the number of attraction visits scheduled that day.
func (d DayPlan) Visits() int {
	n := 0
	for _, a := range d.Activities {
		if a.Kind == ActivityVisit {
			n++
		}
	}
	return n
}

// Represents a generated day-by-day trip plan.
// It is immutable planning data and is regenerated whenever an input
// changes.
type Itinerary struct {
	ID              string
	CityID          int
	Destination     string
	DurationDays    int
	Pacing          Pacing
	Strategy        string
	Budget          int
	BudgetPerDay    int
	Days            []DayPlan
	TotalDistanceKm float64
}

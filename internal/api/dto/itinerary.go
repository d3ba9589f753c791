package dto

import (
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/services"
)

type ItineraryRequest struct {
	CityID       int      `json:"city_id" validate:"required,gt=0"`
	Destination  string   `json:"destination"`
	DurationDays LooseInt `json:"duration_days"`
	Pacing       string   `json:"pacing"`
	Budget       LooseInt `json:"budget"`
	Category     string   `json:"category"`
	Strategy     string   `json:"strategy"`
	Seed         *uint64  `json:"seed"`
}

// Input converts the request into the service input. seed is used when
// the request did not carry one.
func (r ItineraryRequest) Input(seed uint64) services.ItineraryInput {
	if r.Seed != nil {
		seed = *r.Seed
	}
	return services.ItineraryInput{
		CityID:         r.CityID,
		Destination:    r.Destination,
		DurationDays:   int(r.DurationDays),
		Pacing:         r.Pacing,
		Budget:         int(r.Budget),
		CategoryFilter: r.Category,
		Strategy:       r.Strategy,
		Seed:           seed,
	}
}

type ActivityResponse struct {
	Kind        string `json:"kind"`
	Time        string `json:"time"`
	Hour        int    `json:"hour"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category,omitempty"`
	EntryFee    int    `json:"entry_fee"`
}

type DayPlanResponse struct {
	Day        int                `json:"day"`
	Title      string             `json:"title"`
	TimeOfDay  string             `json:"time_of_day"`
	DistanceKm float64            `json:"distance_km"`
	Activities []ActivityResponse `json:"activities"`
}

type ItineraryResponse struct {
	ID              string            `json:"id"`
	CityID          int               `json:"city_id"`
	Destination     string            `json:"destination"`
	DurationDays    int               `json:"duration_days"`
	Pacing          string            `json:"pacing"`
	Strategy        string            `json:"strategy"`
	Budget          int               `json:"budget"`
	BudgetPerDay    int               `json:"budget_per_day"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	Days            []DayPlanResponse `json:"days"`
}

func NewItineraryResponse(it *domain.Itinerary) ItineraryResponse {
	res := ItineraryResponse{
		ID:              it.ID,
		CityID:          it.CityID,
		Destination:     it.Destination,
		DurationDays:    it.DurationDays,
		Pacing:          string(it.Pacing),
		Strategy:        it.Strategy,
		Budget:          it.Budget,
		BudgetPerDay:    it.BudgetPerDay,
		TotalDistanceKm: it.TotalDistanceKm,
		Days:            make([]DayPlanResponse, 0, len(it.Days)),
	}

	for _, d := range it.Days {
		day := DayPlanResponse{
			Day:        d.Day,
			Title:      d.Title,
			TimeOfDay:  d.TimeOfDay,
			DistanceKm: d.DistanceKm,
			Activities: make([]ActivityResponse, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, ActivityResponse{
				Kind:        string(a.Kind),
				Time:        a.Time,
				Hour:        a.Hour,
				Title:       a.Title,
				Description: a.Description,
				Icon:        a.Icon,
				Category:    a.Category,
				EntryFee:    a.EntryFee,
			})
		}
		res.Days = append(res.Days, day)
	}

	return res
}

package services

import (
	"itinerary-planner/internal/domain"
	"math/rand/v2"
	"strings"
)

const (
	StrategyNearestNeighbor = "nearest-neighbor"
	StrategyShuffle         = "shuffle"
)

// RouteStrategy decides how attractions are spread over days and how each
// day is ordered.
type RouteStrategy interface {
	Name() string
	// Arrange returns the full attraction set in the order it is split into days.
	Arrange(attractions []domain.Attraction) []domain.Attraction
	// Route orders one day's attractions.
	Route(attractions []domain.Attraction) domain.Tour
}

// NearestNeighborStrategy keeps the source order across days and orders
// each day with BuildTour.
type NearestNeighborStrategy struct{}

func (NearestNeighborStrategy) Name() string { return StrategyNearestNeighbor }

func (NearestNeighborStrategy) Arrange(attractions []domain.Attraction) []domain.Attraction {
	return append([]domain.Attraction(nil), attractions...)
}

func (NearestNeighborStrategy) Route(attractions []domain.Attraction) domain.Tour {
	return BuildTour(attractions)
}

// ShuffleStrategy spreads attractions over days in a random order for
// variety. Days keep the shuffled order. The same seed always yields the
// same arrangement. Not safe for concurrent use.
type ShuffleStrategy struct {
	rng *rand.Rand
}

func NewShuffleStrategy(seed uint64) *ShuffleStrategy {
	return &ShuffleStrategy{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *ShuffleStrategy) Name() string { return StrategyShuffle }

func (s *ShuffleStrategy) Arrange(attractions []domain.Attraction) []domain.Attraction {
	out := append([]domain.Attraction(nil), attractions...)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (s *ShuffleStrategy) Route(attractions []domain.Attraction) domain.Tour {
	return TourFromOrder(attractions)
}

// NewRouteStrategy builds the strategy named by kind.
// Unknown names fall back to nearest-neighbor.
func NewRouteStrategy(kind string, seed uint64) RouteStrategy {
	if ParseStrategy(kind) == StrategyShuffle {
		return NewShuffleStrategy(seed)
	}
	return NearestNeighborStrategy{}
}

func ParseStrategy(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StrategyShuffle, "random":
		return StrategyShuffle
	default:
		return StrategyNearestNeighbor
	}
}

package domain

import "strings"

// Pacing controls how many attractions are scheduled per day.
type Pacing string

const (
	PacingRelaxed         Pacing = "Relaxed"
	PacingBalanced        Pacing = "Balanced"
	PacingAdventurePacked Pacing = "Adventure-packed"
)

// ParsePacing maps user input onto a known pacing.
// Matching ignores case and surrounding whitespace; anything
// unrecognised falls back to Balanced.
func ParsePacing(s string) Pacing {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relaxed":
		return PacingRelaxed
	case "adventure-packed", "adventure packed", "adventure":
		return PacingAdventurePacked
	default:
		return PacingBalanced
	}
}

// ItemsPerDay returns the number of attractions per day for p.
func (p Pacing) ItemsPerDay() int {
	switch p {
	case PacingRelaxed:
		return 2
	case PacingAdventurePacked:
		return 4
	default:
		return 3
	}
}

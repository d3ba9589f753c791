package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseInt(t *testing.T) {
	cases := map[string]int{
		`{"n": 5}`:     5,
		`{"n": "7"}`:   7,
		`{"n": " 4 "}`: 4,
		`{"n": 2.9}`:   2,
		`{"n": "abc"}`: 0,
		`{"n": null}`:  0,
		`{"n": true}`:  0,
		`{"n": [1]}`:   0,
		`{"n": -3}`:    -3,
		`{"n": 1e12}`:  0,
		`{}`:           0,
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			var v struct {
				N LooseInt `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(input), &v))
			assert.Equal(t, LooseInt(want), v.N)
		})
	}
}

func TestItineraryRequestInput(t *testing.T) {
	seed := uint64(42)
	req := ItineraryRequest{CityID: 1, DurationDays: 2, Category: "beach", Seed: &seed}

	in := req.Input(7)
	assert.Equal(t, uint64(42), in.Seed)
	assert.Equal(t, 2, in.DurationDays)
	assert.Equal(t, "beach", in.CategoryFilter)

	req.Seed = nil
	assert.Equal(t, uint64(7), req.Input(7).Seed)
}

package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	CityID int      `validate:"required,gt=0"`
	Names  []string `validate:"min=1,max=2"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&sample{CityID: 1, Names: []string{"a"}}))

	err := Validate(&sample{Names: []string{"a", "b", "c"}})
	require.Error(t, err)
	assert.Equal(t, "CityID is required; Names must be at most 2", Message(err))
}

func TestMessagePassesThroughOtherErrors(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

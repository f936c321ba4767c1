package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/railbook/railbook/internal/core/domain"
)

func TestParseGender(t *testing.T) {
	for _, s := range []string{"Male", "Female", "Other"} {
		g, ok := domain.ParseGender(s)
		assert.True(t, ok)
		assert.Equal(t, domain.Gender(s), g)
	}

	_, ok := domain.ParseGender("male")
	assert.False(t, ok)
}

func TestParseBerthPreference(t *testing.T) {
	for _, s := range []string{"No Preference", "Lower", "Middle", "Upper", "Side Lower", "Side Upper"} {
		b, ok := domain.ParseBerthPreference(s)
		assert.True(t, ok)
		assert.Equal(t, domain.BerthPreference(s), b)
	}

	_, ok := domain.ParseBerthPreference("Window")
	assert.False(t, ok)
}

func TestValidationErrorMatchesByCategory(t *testing.T) {
	err := domain.ValidationError("age must be between 1 and 100")

	assert.ErrorIs(t, err, domain.ValidationError(""))
	assert.ErrorIs(t, fmt.Errorf("create booking: %w", err), domain.ValidationError(""))
	assert.False(t, errors.Is(err, domain.ErrNoSeatsAvailable))
}

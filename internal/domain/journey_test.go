package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/pkg/errors"
)

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	at := func(hours int) time.Time { return base.Add(time.Duration(hours) * time.Hour) }

	tests := []struct {
		name     string
		aDep     time.Time
		aArr     time.Time
		bDep     time.Time
		bArr     time.Time
		expected bool
	}{
		{"fully inside", at(0), at(10), at(2), at(4), true},
		{"fully contains", at(2), at(4), at(0), at(10), true},
		{"partial overlap left", at(0), at(5), at(3), at(8), true},
		{"partial overlap right", at(3), at(8), at(0), at(5), true},
		{"identical windows", at(0), at(5), at(0), at(5), true},
		{"arrival touches departure", at(0), at(5), at(5), at(10), true},
		{"departure touches arrival", at(5), at(10), at(0), at(5), true},
		{"disjoint before", at(0), at(2), at(3), at(5), false},
		{"disjoint after", at(3), at(5), at(0), at(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				domain.IntervalsOverlap(tt.aDep, tt.aArr, tt.bDep, tt.bArr))
		})
	}
}

func TestValidateJourneyTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		err := domain.ValidateJourneyTime(now.Add(time.Hour), now.Add(5*time.Hour), now)
		assert.NoError(t, err)
	})

	t.Run("departure in the past", func(t *testing.T) {
		err := domain.ValidateJourneyTime(now.Add(-time.Hour), now.Add(5*time.Hour), now)
		assert.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_TIME_WINDOW", appErr.Code)
	})

	t.Run("departure exactly now", func(t *testing.T) {
		err := domain.ValidateJourneyTime(now, now.Add(5*time.Hour), now)
		assert.Error(t, err)
	})

	t.Run("departure after arrival", func(t *testing.T) {
		err := domain.ValidateJourneyTime(now.Add(5*time.Hour), now.Add(time.Hour), now)
		assert.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_TIME_WINDOW", appErr.Code)
	})

	t.Run("departure equals arrival", func(t *testing.T) {
		err := domain.ValidateJourneyTime(now.Add(time.Hour), now.Add(time.Hour), now)
		assert.Error(t, err)
	})
}

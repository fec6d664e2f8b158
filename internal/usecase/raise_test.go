package usecase

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

func TestRaiseOutcome(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Cooldown elapsed allows the raise and schedules the next one", func(t *testing.T) {
		result, err := raiseOutcome("Go Developer", "premium", now.Add(-4*time.Hour), now)

		assert.NoError(t, err)
		assert.Equal(t, "Go Developer", result.VacancyTitle)
		assert.Equal(t, 3, result.NextUpdateInHours)
		assert.Equal(t, now.Add(3*time.Hour), result.NextUpdateAt)
	})

	t.Run("Raise inside the cooldown reports hours left with two decimals", func(t *testing.T) {
		// Free tier cools down 8 hours; 5h30m elapsed leaves 2.5.
		result, err := raiseOutcome("Go Developer", "free", now.Add(-5*time.Hour-30*time.Minute), now)

		assert.Nil(t, result)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
		assert.Equal(t, "Vacancy was raised recently", appErr.Message)

		details, ok := appErr.Details.(*domain.RaiseCooldownError)
		assert.True(t, ok)
		assert.Equal(t, "Go Developer", details.VacancyTitle)
		assert.Equal(t, 2.5, details.HoursLeft)
	})

	t.Run("Remaining time is rounded, not truncated", func(t *testing.T) {
		// 7h59m elapsed on an 8h cooldown leaves one minute, 0.0166... hours.
		_, err := raiseOutcome("Go Developer", "free", now.Add(-7*time.Hour-59*time.Minute), now)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 0.02, appErr.Details.(*domain.RaiseCooldownError).HoursLeft)
	})

	t.Run("Raise exactly at the cooldown boundary succeeds", func(t *testing.T) {
		result, err := raiseOutcome("Go Developer", "paid", now.Add(-6*time.Hour), now)

		assert.NoError(t, err)
		assert.Equal(t, 6, result.NextUpdateInHours)
	})

	t.Run("Unknown tier falls back to the free cooldown", func(t *testing.T) {
		_, err := raiseOutcome("Go Developer", "platinum", now.Add(-7*time.Hour), now)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
		assert.Equal(t, 1.0, appErr.Details.(*domain.RaiseCooldownError).HoursLeft)
	})

	t.Run("Each tier uses its own cooldown", func(t *testing.T) {
		updatedAt := now.Add(-4 * time.Hour)

		_, freeErr := raiseOutcome("v", "free", updatedAt, now)
		_, paidErr := raiseOutcome("v", "paid", updatedAt, now)
		premiumResult, premiumErr := raiseOutcome("v", "premium", updatedAt, now)

		assert.Error(t, freeErr)
		assert.Error(t, paidErr)
		assert.NoError(t, premiumErr)
		assert.Equal(t, 3, premiumResult.NextUpdateInHours)
	})
}

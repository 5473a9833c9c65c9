package usecase

import (
	"time"

	"github.com/rail-booking-service/internal/pkg/errors"
)

// validateDateTimeFilter проверяет формат фильтров по дате и времени.
// Время поддерживается только поверх даты: без даты оно молча игнорируется -
// это единственный путь, где они связаны.
func validateDateTimeFilter(date, timeOfDay string) (string, string, error) {
	if date == "" {
		return "", "", nil
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", "", errors.ErrInvalidDateFormat.WithDetail(
			"date", "Invalid date format. Please use YYYY-MM-DD.",
		)
	}

	if timeOfDay != "" {
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return "", "", errors.ErrInvalidTimeFormat.WithDetail(
				"time", "Invalid time format. Please use HH:MM.",
			)
		}
	}

	return date, timeOfDay, nil
}

package get_available_slots

import (
	"fmt"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDateWindow проверяет окно бронирования в календаре специалиста:
// today <= date <= today + HorizonDays. Дата в прошлом и дата за
// горизонтом отклоняются одинаково.
func validateDateWindow(date time.Time, now time.Time) error {
	today := domain.CivilDate(now)
	requested := domain.CivilDate(date)
	maxDate := today.AddDate(0, 0, domain.HorizonDays)

	if requested.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrDateOutOfRange)
	}
	if requested.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateOutOfRange, domain.HorizonDays)
	}

	return nil
}

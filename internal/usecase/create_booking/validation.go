package create_booking

import (
	"fmt"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Amount != nil && *req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateDateWindow проверяет окно бронирования:
// today <= date <= today + HorizonDays в календаре специалиста
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

// validateSlotInGrid проверяет, что время совпадает с одним из слотов
// расписания, порождённых текущими настройками
func validateSlotInGrid(startTime types.TimeString, slots []types.TimeString) error {
	for _, slot := range slots {
		if slot == startTime {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not match the schedule grid", ErrInvalidTimeSlot, startTime)
}

// validateLeadTime проверяет, что до начала слота остаётся не меньше
// MinLeadTimeMinutes
func validateLeadTime(date time.Time, startTime types.TimeString, now time.Time) error {
	instant, err := domain.SlotInstant(date, startTime)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve slot instant: %v", ErrInternal, err)
	}

	if instant.Before(now.Add(domain.MinLeadTimeMinutes * time.Minute)) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, domain.MinLeadTimeMinutes)
	}

	return nil
}

// checkSlotFree проверяет, что слот не занят активной бронью и не
// заблокирован администратором
func checkSlotFree(startTime types.TimeString, bookings []*domain.Booking, blocked []*domain.BlockedSlot) error {
	for _, b := range bookings {
		if b.OccupiesSlot() && b.StartTime == startTime {
			return fmt.Errorf("%w: slot %s is already booked", ErrSlotNotAvailable, startTime)
		}
	}
	for _, bl := range blocked {
		if bl.SlotTime == startTime {
			return fmt.Errorf("%w: slot %s is blocked", ErrSlotNotAvailable, startTime)
		}
	}
	return nil
}

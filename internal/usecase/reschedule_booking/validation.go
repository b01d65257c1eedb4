package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return nil
}

// validateDateWindow проверяет окно бронирования для новой даты
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

// validateSlotInGrid проверяет, что новое время совпадает со слотом расписания
func validateSlotInGrid(startTime types.TimeString, slots []types.TimeString) error {
	for _, slot := range slots {
		if slot == startTime {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not match the schedule grid", ErrInvalidTimeSlot, startTime)
}

// validateLeadTime проверяет минимальный интервал до начала нового слота
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

// checkSlotFree проверяет целевой слот; собственное бронирование
// (перенос на тот же слот) конфликтом не считается
func checkSlotFree(bookingID int64, startTime types.TimeString, bookings []*domain.Booking, blocked []*domain.BlockedSlot) error {
	for _, b := range bookings {
		if b.ID == bookingID {
			continue
		}
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

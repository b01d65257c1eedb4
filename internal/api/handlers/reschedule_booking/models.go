package reschedule_booking

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	rescheduleBooking "github.com/ameleshkina/consult-booking/internal/usecase/reschedule_booking"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate      string  `json:"newDate"`      // "2026-05-14"
	NewStartTime string  `json:"newStartTime"` // "15:00"
	Reason       *string `json:"reason,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID           int64  `json:"id"`
	ClientID     *int64 `json:"clientId,omitempty"`
	ClientName   string `json:"clientName"`
	BookingDate  string `json:"bookingDate"`
	StartTime    string `json:"startTime"`
	Status       string `json:"status"`
	OldDate      string `json:"oldDate"`
	OldStartTime string `json:"oldStartTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64, actor domain.Actor) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID:    bookingID,
		Actor:        actor,
		NewDate:      newDate,
		NewStartTime: newStartTime,
		Reason:       r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		ClientName:   resp.ClientName,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Status:       resp.Status,
		OldDate:      resp.OldDate.Format(domain.DateFormat),
		OldStartTime: resp.OldStartTime.String(),
	}
}

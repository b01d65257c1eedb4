package create_booking

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	createBooking "github.com/ameleshkina/consult-booking/internal/usecase/create_booking"
	"github.com/ameleshkina/consult-booking/pkg/ptr"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID             *int64   `json:"clientId,omitempty"` // Учитывается только для администратора
	ClientName           string   `json:"clientName"`
	ClientPhone          string   `json:"clientPhone"`
	ClientEmail          *string  `json:"clientEmail,omitempty"`
	ClientTelegramChatID *int64   `json:"clientTelegramChatId,omitempty"`
	BookingDate          string   `json:"bookingDate"` // "2026-05-14"
	StartTime            string   `json:"startTime"`   // "10:00"
	ProductID            *int64   `json:"productId,omitempty"`
	Amount               *float64 `json:"amount,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	ClientID        *int64   `json:"clientId,omitempty"`
	ClientName      string   `json:"clientName"`
	ClientPhone     string   `json:"clientPhone"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	ProductID       *int64   `json:"productId,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Гостевую бронь на другого клиента может завести только администратор;
// для клиента владелец всегда он сам.
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	clientID := ptr.Ptr(actor.ID)
	if actor.IsAdmin() {
		clientID = r.ClientID
	}

	return &createBooking.Request{
		ClientID:             clientID,
		ClientName:           r.ClientName,
		ClientPhone:          r.ClientPhone,
		ClientEmail:          r.ClientEmail,
		ClientTelegramChatID: r.ClientTelegramChatID,
		Date:                 bookingDate,
		StartTime:            startTime,
		ProductID:            r.ProductID,
		Amount:               r.Amount,
		Notes:                r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ProductID:       resp.ProductID,
		Amount:          resp.Amount,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

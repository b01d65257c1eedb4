package confirm_payment

import (
	"context"

	"github.com/ameleshkina/consult-booking/internal/service/bookings/models"
)

type BookingsService interface {
	ConfirmPayment(ctx context.Context, bookingID int64, req *models.ConfirmPaymentRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

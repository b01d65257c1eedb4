package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ameleshkina/consult-booking/internal/api/handlers"
	"github.com/ameleshkina/consult-booking/internal/api/middleware"
	rescheduleBooking "github.com/ameleshkina/consult-booking/internal/usecase/reschedule_booking"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат новой даты, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidStatus      = "бронирование в текущем статусе нельзя перенести"
	msgDateOutOfRange     = "новая дата вне окна бронирования"
	msgInvalidTimeSlot    = "новое время не совпадает со слотами расписания"
	msgTooLateToBook      = "слишком поздно для переноса на этот слот"
	msgSlotNotAvailable   = "целевой временной слот недоступен"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, actor)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, actor=%d",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rescheduleBooking.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid status: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not available: booking_id=%d, date=%s, time=%s",
				bookingID, req.NewDate, req.NewStartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrDateOutOfRange):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Date out of range: booking_id=%d, date=%s",
				bookingID, req.NewDate)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateOutOfRange)

		case errors.Is(err, rescheduleBooking.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid time slot: booking_id=%d, time=%s",
				bookingID, req.NewStartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleBooking.ErrTooLateToBook):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Too late: booking_id=%d, date=%s, time=%s",
				bookingID, req.NewDate, req.NewStartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooLateToBook)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking moved: booking_id=%d, actor=%d, new=%s %s",
		bookingID, actor.ID, req.NewDate, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package block_day

import (
	"errors"
	"net/http"

	"github.com/ameleshkina/consult-booking/internal/api/handlers"
	"github.com/ameleshkina/consult-booking/internal/api/middleware"
	blocksService "github.com/ameleshkina/consult-booking/internal/service/blocks"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "доступ запрещен"
	msgDateOutOfRange     = "нельзя заблокировать день в прошлом"
)

type Handler struct {
	service BlocksService
	logger  Logger
}

func NewHandler(service BlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/blocks/day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BlockDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/blocks/day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("POST /schedule/blocks/day - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BlockDay(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocksService.ErrAccessDenied):
			h.logger.Warn("POST /schedule/blocks/day - Access denied: actor=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, blocksService.ErrDateOutOfRange):
			h.logger.Warn("POST /schedule/blocks/day - Date out of range: date=%s", req.Date)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateOutOfRange)

		case errors.Is(err, blocksService.ErrInvalidInput):
			h.logger.Warn("POST /schedule/blocks/day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule/blocks/day - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/blocks/day - Day blocked: date=%s, slots=%d, actor=%d",
		req.Date, len(result.BlockedSlots), actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

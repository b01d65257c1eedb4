package unblock_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ameleshkina/consult-booking/internal/api/handlers"
	"github.com/ameleshkina/consult-booking/internal/api/middleware"
	blocksService "github.com/ameleshkina/consult-booking/internal/service/blocks"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgInvalidBlockID = "некорректный ID блокировки"
	msgAccessDenied   = "доступ запрещен"
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

// Handle DELETE /api/v1/schedule/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	blockID, err := strconv.ParseInt(mux.Vars(r)["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.UnblockSlot(r.Context(), blockID, actor); err != nil {
		switch {
		case errors.Is(err, blocksService.ErrAccessDenied):
			h.logger.Warn("DELETE /schedule/blocks/{id} - Access denied: block_id=%d, actor=%d",
				blockID, actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /schedule/blocks/{id} - Failed: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/blocks/{id} - Slot unblocked: block_id=%d, actor=%d", blockID, actor.ID)
	handlers.RespondNoContent(w)
}

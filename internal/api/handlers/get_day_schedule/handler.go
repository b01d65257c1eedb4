package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ameleshkina/consult-booking/internal/api/handlers"
	"github.com/ameleshkina/consult-booking/internal/api/middleware"
	"github.com/ameleshkina/consult-booking/internal/domain"
	blocksService "github.com/ameleshkina/consult-booking/internal/service/blocks"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAccessDenied = "доступ запрещен"
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

// Handle GET /api/v1/schedule/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	date, err := time.Parse(domain.DateFormat, mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /schedule/days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDaySchedule(r.Context(), date, actor)
	if err != nil {
		switch {
		case errors.Is(err, blocksService.ErrAccessDenied):
			h.logger.Warn("GET /schedule/days/{date} - Access denied: date=%s, actor=%d",
				mux.Vars(r)["date"], actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /schedule/days/{date} - Failed: date=%s, error=%v", mux.Vars(r)["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

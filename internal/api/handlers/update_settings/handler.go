package update_settings

import (
	"errors"
	"net/http"

	"github.com/ameleshkina/consult-booking/internal/api/handlers"
	"github.com/ameleshkina/consult-booking/internal/api/middleware"
	settingsService "github.com/ameleshkina/consult-booking/internal/service/settings"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidSettings    = "некорректные настройки расписания"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("PUT /schedule/settings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSettings)
		return
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrAccessDenied):
			h.logger.Warn("PUT /schedule/settings - Access denied: actor=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /schedule/settings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/settings - Settings updated: actor=%d, work=%s-%s, duration=%d",
		actor.ID, req.WorkStart, req.WorkEnd, req.SessionDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}

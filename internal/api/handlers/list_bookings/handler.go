package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SC-SchedulingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SC-SchedulingService/internal/service/bookings/models"
)

const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgInvalidQuery  = "некорректные параметры запроса"
	msgStaffNotFound = "профиль сотрудника не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: staffId, clientId, date (YYYY-MM-DD), status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.UserRoleFromContext(r.Context())

	req, err := ParseQuery(r.URL.Query(), models.Actor{UserID: userID, Role: role})
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrStaffNotFound):
			h.logger.Warn("GET /bookings - No staff profile: user_id=%d", userID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: user_id=%d, count=%d", userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

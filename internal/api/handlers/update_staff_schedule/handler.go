package update_staff_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SC-SchedulingService/internal/api/middleware"
	staffService "github.com/m04kA/SC-SchedulingService/internal/service/staff"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgStaffNotFound      = "сотрудник не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем staffId из URL
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/schedule - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /staff/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.UserRoleFromContext(r.Context())

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание
	result, err := h.service.UpdateSchedule(r.Context(), staffID, req.ToServiceRequest(userID, role))
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{id}/schedule - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffService.ErrAccessDenied):
			h.logger.Warn("PUT /staff/{id}/schedule - Access denied: staff_id=%d, user_id=%d", staffID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, staffService.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/schedule - Invalid input: staff_id=%d, error=%v", staffID, err)
			// Текст ошибки содержит имя некорректного поля
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/{id}/schedule - Failed to update schedule: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/schedule - Schedule updated: staff_id=%d, user_id=%d", staffID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

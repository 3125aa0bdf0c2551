package get_my_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SC-SchedulingService/internal/api/middleware"
	staffService "github.com/m04kA/SC-SchedulingService/internal/service/staff"
	getStaffAvailability "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
)

const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgNoProfile     = "профиль сотрудника не найден"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound = "сотрудник не найден"
)

type Handler struct {
	staffService StaffService
	availability GetStaffAvailabilityUseCase
	logger       Logger
}

func NewHandler(staffService StaffService, availability GetStaffAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		staffService: staffService,
		availability: availability,
		logger:       logger,
	}
}

// Handle GET /api/v1/staff/me
// Query params: date (optional, YYYY-MM-DD) - добавляет расклад слотов на дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/me - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Находим профиль сотрудника по учётной записи
	staff, err := h.staffService.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, staffService.ErrStaffNotFound) {
			h.logger.Warn("GET /staff/me - No staff profile for user=%d", userID)
			handlers.RespondNotFound(w, msgNoProfile)
			return
		}
		h.logger.Error("GET /staff/me - Failed to get staff profile: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &MyScheduleResponse{Staff: *staff}

	// При наличии даты добавляем расклад слотов
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /staff/me - Invalid date format: user_id=%d, date=%s", userID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		result, err := h.availability.Execute(r.Context(), &getStaffAvailability.Request{
			StaffID: staff.ID,
			Date:    date,
		})
		if err != nil {
			if errors.Is(err, getStaffAvailability.ErrStaffNotFound) {
				handlers.RespondNotFound(w, msgStaffNotFound)
				return
			}
			h.logger.Error("GET /staff/me - Failed to get availability: staff_id=%d, error=%v", staff.ID, err)
			handlers.RespondInternalError(w)
			return
		}

		response.Availability = FromAvailabilityResponse(result)
	}

	h.logger.Info("GET /staff/me - Schedule retrieved: user_id=%d, staff_id=%d", userID, staff.ID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

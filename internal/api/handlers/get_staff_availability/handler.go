package get_staff_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SC-SchedulingService/internal/api/handlers"
	getStaffAvailability "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound  = "сотрудник не найден"
)

type Handler struct {
	useCase GetStaffAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetStaffAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем staffId из URL
	staffIDStr := vars["staffId"]
	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /staff/{id}/availability - Missing date: staff_id=%d", staffID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(staffID, dateStr)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getStaffAvailability.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/availability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getStaffAvailability.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/availability - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /staff/{id}/availability - Failed to get availability: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/availability - Availability retrieved: staff_id=%d, date=%s, available=%d, booked=%d",
		staffID, dateStr, len(result.AvailableSlots), len(result.BookedSlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package list_staff

import (
	"net/http"

	"github.com/m04kA/SC-SchedulingService/internal/api/handlers"
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

// Handle GET /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff - Staff list retrieved: count=%d", len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_staff_schedule

import (
	"github.com/m04kA/SC-SchedulingService/internal/service/staff/models"
)

// UpdateScheduleRequest HTTP request model.
// Незаданные поля расписания остаются без изменений.
type UpdateScheduleRequest struct {
	WorkStart           *string `json:"workStart,omitempty"` // "HH:MM" или час "6".."23"
	WorkEnd             *string `json:"workEnd,omitempty"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64, role string) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:              userID,
		Role:                role,
		WorkStart:           r.WorkStart,
		WorkEnd:             r.WorkEnd,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}

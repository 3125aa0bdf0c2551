package models

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания сотрудника.
// Незаданные поля остаются без изменений.
type UpdateScheduleRequest struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`

	WorkStart           *string `json:"workStart,omitempty"`           // "HH:MM" или час "6".."23"
	WorkEnd             *string `json:"workEnd,omitempty"`             // "HH:MM" или час "6".."23"
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"` // Длительность слота в минутах
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID             int64  `json:"id"`
	UserID         *int64 `json:"userId,omitempty"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`

	WorkStart           string `json:"workStart"` // "09:00"
	WorkEnd             string `json:"workEnd"`   // "18:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.StaffMember) *StaffResponse {
	if s == nil {
		return nil
	}

	return &StaffResponse{
		ID:                  s.ID,
		UserID:              s.UserID,
		Name:                s.Name,
		Specialization:      string(s.Specialization),
		WorkStart:           s.WorkStart.String(),
		WorkEnd:             s.WorkEnd.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(staff []*domain.StaffMember) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffResponse, 0, len(staff)),
	}

	for _, s := range staff {
		if s == nil {
			continue
		}
		resp.Staff = append(resp.Staff, *FromDomainStaff(s))
	}

	return resp
}

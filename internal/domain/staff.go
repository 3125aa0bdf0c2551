package domain

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// Specialization специализация сотрудника
type Specialization string

const (
	SpecializationTrainer Specialization = "trainer"
	SpecializationMasseur Specialization = "masseur"
)

// IsValid возвращает true для известной специализации
func (s Specialization) IsValid() bool {
	return s == SpecializationTrainer || s == SpecializationMasseur
}

// StaffMember сотрудник клуба с конфигурацией рабочего расписания.
// Движок расписания только читает эту сущность; создание профиля
// происходит при заведении учётной записи сотрудника.
type StaffMember struct {
	ID             int64
	UserID         *int64 // NULL для профилей без привязанной учётной записи
	Name           string
	Specialization Specialization

	// Рабочее окно [WorkStart, WorkEnd) и длительность одного слота.
	// Окно с WorkEnd <= WorkStart даёт ноль слотов, это не ошибка.
	WorkStart           types.TimeString
	WorkEnd             types.TimeString
	SlotDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWorkingWindow возвращает true, если у сотрудника настроено непустое рабочее окно
func (s *StaffMember) HasWorkingWindow() bool {
	return s.SlotDurationMinutes > 0 && s.WorkStart.IsBefore(s.WorkEnd)
}

// ScheduleUpdate частичное обновление расписания сотрудника.
// Незаданные поля остаются без изменений.
type ScheduleUpdate struct {
	WorkStart           *types.TimeString
	WorkEnd             *types.TimeString
	SlotDurationMinutes *int
}

// IsEmpty возвращает true, если обновление не содержит ни одного поля
func (u *ScheduleUpdate) IsEmpty() bool {
	return u.WorkStart == nil && u.WorkEnd == nil && u.SlotDurationMinutes == nil
}

package domain

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// BookingStatus статус записи
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid возвращает true для известного статуса
func (s BookingStatus) IsValid() bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// Booking запись клиента на услугу.
// StaffID может быть NULL - записи без назначенного сотрудника
// невидимы для движка расписания.
type Booking struct {
	ID          int64
	ClientID    int64
	ServiceID   int64
	StaffID     *int64
	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus
	Notes       *string

	// Denormalized data for history
	ClientName   string
	ClientPhone  *string
	ServiceName  string
	ServicePrice float64
	StaffName    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot возвращает true, если запись занимает слот.
// Отменённая запись никогда не занимает слот.
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если запись можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// IsCancelled возвращает true для отменённой записи
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для выборки записей
type BookingsFilter struct {
	StaffID          *int64         // Фильтр по сотруднику (опционально)
	ClientID         *int64         // Фильтр по клиенту (опционально)
	Date             *time.Time     // Фильтр по дате (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые записи
}

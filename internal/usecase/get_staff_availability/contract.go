package get_staff_availability

import (
	"context"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetWithFilter получает записи по фильтру (отменённые исключаются фильтром)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package staff

import (
	"context"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.StaffMember, error)
	List(ctx context.Context) ([]*domain.StaffMember, error)
	UpdateSchedule(ctx context.Context, id int64, update domain.ScheduleUpdate) (*domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

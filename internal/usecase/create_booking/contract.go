package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/internal/integrations/clubservice"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// FindActiveSlot ищет неотменённую запись на точный слот
	FindActiveSlot(ctx context.Context, staffID int64, date time.Time, startTime types.TimeString) (*domain.Booking, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
}

// ClubServiceClient интерфейс клиента для ClubService
type ClubServiceClient interface {
	GetClient(ctx context.Context, clientID int64) (*clubservice.ClubClient, error)
	GetService(ctx context.Context, serviceID int64) (*clubservice.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

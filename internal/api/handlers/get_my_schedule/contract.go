package get_my_schedule

import (
	"context"

	"github.com/m04kA/SC-SchedulingService/internal/service/staff/models"
	getStaffAvailability "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
)

type StaffService interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StaffResponse, error)
}

type GetStaffAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getStaffAvailability.Request) (*getStaffAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

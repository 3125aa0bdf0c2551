package update_staff_schedule

import (
	"context"

	"github.com/m04kA/SC-SchedulingService/internal/service/staff/models"
)

type StaffService interface {
	UpdateSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

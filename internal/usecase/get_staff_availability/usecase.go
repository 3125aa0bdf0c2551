package get_staff_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// UseCase use case для получения расклада слотов сотрудника на дату
type UseCase struct {
	staffRepo   StaffRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:   staffRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStaffAvailability: staff=%d, date=%s",
		req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStaffAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сотрудника
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetStaffAvailability: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetStaffAvailability: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
	}

	// 3. Генерируем все кандидаты слотов из рабочего окна
	slots := generateSlots(staff.WorkStart, staff.WorkEnd, staff.SlotDurationMinutes)

	// 4. Получаем активные записи сотрудника на дату
	filter := domain.BookingsFilter{
		StaffID: &req.StaffID,
		Date:    &req.Date,
		// Отменённые записи не занимают слоты
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetStaffAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make([]types.TimeString, 0, len(bookings))
	for _, b := range bookings {
		booked = append(booked, b.StartTime)
	}

	// 5. Делим кандидатов на свободные и занятые
	availability := domain.StaffAvailability{
		Date:           req.Date,
		AvailableSlots: partitionSlots(slots, booked),
		BookedSlots:    booked,
	}

	uc.logger.Info("GetStaffAvailability: staff=%d, date=%s, available=%d, booked=%d, hasFree=%t",
		req.StaffID, req.Date.Format(domain.DateFormat),
		len(availability.AvailableSlots), len(availability.BookedSlots), availability.HasFreeSlots())

	return &Response{
		StaffID:        staff.ID,
		StaffName:      staff.Name,
		Specialization: staff.Specialization,
		Date:           availability.Date,
		AvailableSlots: availability.AvailableSlots,
		BookedSlots:    availability.BookedSlots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

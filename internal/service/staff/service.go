package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/internal/service/staff/models"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// Service сервис для работы с сотрудниками и их расписанием
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// List возвращает список всех сотрудников клуба
func (s *Service) List(ctx context.Context) (*models.StaffListResponse, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff members", len(staff))
	return models.FromDomainStaffList(staff), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(member), nil
}

// GetByUserID получает профиль сотрудника по ID учётной записи.
// Используется для ручки "моё расписание".
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByUserID: no staff profile for user=%d", userID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByUserID: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUserID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(member), nil
}

// UpdateSchedule обновляет рабочее расписание сотрудника.
// Админ может обновить расписание любого сотрудника,
// сотрудник - только своё собственное.
func (s *Service) UpdateSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.StaffResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for staff=%d by user=%d role=%s",
		staffID, req.UserID, req.Role)

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateSchedule: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	if err := s.checkScheduleAccess(member, req.UserID, req.Role); err != nil {
		s.logger.Warn("UpdateSchedule: access denied for user=%d role=%s to staff=%d",
			req.UserID, req.Role, staffID)
		return nil, err
	}

	update, err := buildScheduleUpdate(req)
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid schedule for staff=%d: %v", staffID, err)
		return nil, err
	}

	if update.IsEmpty() {
		s.logger.Warn("UpdateSchedule: empty update for staff=%d", staffID)
		return nil, fmt.Errorf("%w: schedule update contains no fields", ErrInvalidInput)
	}

	updated, err := s.staffRepo.UpdateSchedule(ctx, staffID, update)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: updated schedule for staff=%d (%s - %s, slot=%d min)",
		staffID, updated.WorkStart, updated.WorkEnd, updated.SlotDurationMinutes)
	return models.FromDomainStaff(updated), nil
}

// checkScheduleAccess проверяет право менять расписание сотрудника
func (s *Service) checkScheduleAccess(member *domain.StaffMember, userID int64, role string) error {
	if role == domain.RoleAdmin {
		return nil
	}

	if role == domain.RoleStaff && member.UserID != nil && *member.UserID == userID {
		return nil
	}

	return ErrAccessDenied
}

// buildScheduleUpdate валидирует запрос и собирает частичное обновление.
// Границы окна принимаются в формате "HH:MM" или как голый час "6".."23".
func buildScheduleUpdate(req *models.UpdateScheduleRequest) (domain.ScheduleUpdate, error) {
	var update domain.ScheduleUpdate

	if req.WorkStart != nil {
		ts, err := types.NormalizeClockInput(*req.WorkStart)
		if err != nil {
			return update, fmt.Errorf("%w: invalid workStart %q: %v", ErrInvalidInput, *req.WorkStart, err)
		}
		update.WorkStart = &ts
	}

	if req.WorkEnd != nil {
		ts, err := types.NormalizeClockInput(*req.WorkEnd)
		if err != nil {
			return update, fmt.Errorf("%w: invalid workEnd %q: %v", ErrInvalidInput, *req.WorkEnd, err)
		}
		update.WorkEnd = &ts
	}

	if req.SlotDurationMinutes != nil {
		d := *req.SlotDurationMinutes
		if d < domain.MinSlotDurationMinutes || d > domain.MaxSlotDurationMinutes {
			return update, fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
		update.SlotDurationMinutes = &d
	}

	return update, nil
}

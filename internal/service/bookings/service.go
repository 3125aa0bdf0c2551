package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с записями на услуги
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// GetByID получает запись по ID.
// Клиент видит только свои записи, сотрудник - назначенные на него,
// админ - любые.
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d role=%s", id, actor.UserID, actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d role=%s to booking id=%d",
			actor.UserID, actor.Role, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает записи с фильтрацией по сотруднику, клиенту, дате и статусу.
// Клиенту фильтр принудительно сужается до его собственных записей,
// сотруднику - до записей, назначенных на него.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%d role=%s", req.Actor.UserID, req.Actor.Role)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	switch req.Actor.Role {
	case domain.RoleAdmin:
		// Админ видит все, фильтр как запрошен
	case domain.RoleStaff:
		member, err := s.resolveStaffProfile(ctx, req.Actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.StaffID = &member.ID
	default:
		clientID := req.Actor.UserID
		filter.ClientID = &clientID
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for user=%d", len(bookings), req.Actor.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет запись. Отменить можно только запланированную запись.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d role=%s",
		bookingID, req.Actor.UserID, req.Actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, req.Actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d role=%s to booking id=%d",
			req.Actor.UserID, req.Actor.Role, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus переводит запись в новый статус.
// Доступно сотруднику для своих записей и админу. Запланированную запись
// можно только завершить, для отмены есть отдельная операция.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d role=%s",
		bookingID, req.Status, req.Actor.UserID, req.Actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Клиентам статусы менять нельзя
	if req.Actor.Role != domain.RoleAdmin && req.Actor.Role != domain.RoleStaff {
		s.logger.Warn("UpdateStatus: role=%s cannot update status of booking id=%d",
			req.Actor.Role, bookingID)
		return nil, ErrAccessDenied
	}

	if err := s.checkBookingAccess(ctx, booking, req.Actor); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d role=%s to booking id=%d",
			req.Actor.UserID, req.Actor.Role, bookingID)
		return nil, err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if newStatus != domain.StatusCompleted || booking.Status != domain.StatusScheduled {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: cannot change status from %s to %s",
			ErrInvalidStatus, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// checkBookingAccess проверяет право пользователя работать с записью.
// Клиент - только собственные записи, сотрудник - назначенные на него,
// админ - любые.
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, actor models.Actor) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleStaff:
		member, err := s.resolveStaffProfile(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if booking.StaffID != nil && *booking.StaffID == member.ID {
			return nil
		}
		return ErrAccessDenied
	default:
		if booking.ClientID == actor.UserID {
			return nil
		}
		return ErrAccessDenied
	}
}

// resolveStaffProfile находит профиль сотрудника по ID учётной записи
func (s *Service) resolveStaffProfile(ctx context.Context, userID int64) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("resolveStaffProfile: no staff profile for user=%d", userID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("resolveStaffProfile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: resolveStaffProfile - repository error: %v", ErrInternal, err)
	}
	return member, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/internal/integrations/clubservice"
)

// UseCase создание записи на услугу
type UseCase struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	clubService ClubServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый usecase для создания записи
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	clubService ClubServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		clubService: clubService,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает новую запись клиента на услугу.
//
// Проверка рабочего окна и занятости слота и вставка записи выполняются
// в одной serializable транзакции, чтобы две конкурирующие записи на один
// слот не прошли проверку одновременно. Вторая линия защиты - частичный
// уникальный индекс занятости слота в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[CreateBooking] Invalid request: %v", err)
		return nil, err
	}

	// Получаем данные клиента из ClubService
	client, err := uc.clubService.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clubservice.ErrClientNotFound) {
			uc.logger.Warn("[CreateBooking] Client not found: clientID=%d", req.ClientID)
			return nil, fmt.Errorf("%w: Execute - get client: %v", ErrClientNotFound, err)
		}
		uc.logger.Error("[CreateBooking] Failed to get client %d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Execute - get client: %v", ErrInternal, err)
	}

	// Получаем данные услуги из каталога
	service, err := uc.clubService.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, clubservice.ErrServiceNotFound) {
			uc.logger.Warn("[CreateBooking] Service not found: serviceID=%d", req.ServiceID)
			return nil, fmt.Errorf("%w: Execute - get service: %v", ErrServiceNotFound, err)
		}
		uc.logger.Error("[CreateBooking] Failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Execute - get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("[CreateBooking] Service %d is inactive", req.ServiceID)
		return nil, fmt.Errorf("%w: услуга %q недоступна для записи", ErrServiceInactive, service.Name)
	}

	// Запись без сотрудника не участвует в расписании - проверки
	// рабочего окна и занятости слота для неё не выполняются
	var staffMember *domain.StaffMember
	if req.StaffID != nil {
		staffMember, err = uc.staffRepo.GetByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, staff.ErrStaffNotFound) {
				uc.logger.Warn("[CreateBooking] Staff not found: staffID=%d", *req.StaffID)
				return nil, fmt.Errorf("%w: Execute - get staff: %v", ErrStaffNotFound, err)
			}
			uc.logger.Error("[CreateBooking] Failed to get staff %d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: Execute - get staff: %v", ErrInternal, err)
		}
	}

	newBooking := uc.buildBooking(req, client, service, staffMember)

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if staffMember != nil {
			if err := validateWithinWorkingHours(staffMember, req.StartTime); err != nil {
				return err
			}

			// Проверяем занятость слота. Отсутствие активной записи
			// означает, что слот свободен.
			existing, err := uc.bookingRepo.FindActiveSlot(txCtx, *req.StaffID, req.Date, req.StartTime)
			if err != nil && !errors.Is(err, booking.ErrBookingNotFound) {
				return fmt.Errorf("%w: Execute - find active slot: %v", ErrInternal, err)
			}
			if existing != nil {
				return fmt.Errorf("%w: слот %s на %s уже занят",
					ErrSlotTaken, req.StartTime, req.Date.Format(domain.DateFormat))
			}
		}

		created, err = uc.bookingRepo.Create(txCtx, newBooking)
		if err != nil {
			// Уникальный индекс занятости слота - вторая линия защиты
			if errors.Is(err, booking.ErrSlotTaken) {
				return fmt.Errorf("%w: слот %s на %s уже занят",
					ErrSlotTaken, req.StartTime, req.Date.Format(domain.DateFormat))
			}
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) ||
			errors.Is(err, ErrBeforeWorkingHours) ||
			errors.Is(err, ErrAtOrAfterWorkingHours) ||
			errors.Is(err, ErrExceedsWorkingHours) {
			uc.logger.Warn("[CreateBooking] Rejected: %v", err)
			return nil, err
		}
		uc.logger.Error("[CreateBooking] Transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("[CreateBooking] Created booking %d: clientID=%d, serviceID=%d, date=%s, time=%s",
		created.ID, created.ClientID, created.ServiceID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime)

	return uc.buildResponse(created), nil
}

// buildBooking собирает доменную модель с денормализованными данными
func (uc *UseCase) buildBooking(
	req *Request,
	client *clubservice.ClubClient,
	service *clubservice.Service,
	staffMember *domain.StaffMember,
) *domain.Booking {
	b := &domain.Booking{
		ClientID:    req.ClientID,
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		BookingDate: req.Date,
		StartTime:   req.StartTime,
		Status:      domain.StatusScheduled,
		Notes:       req.Notes,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		ServiceName: service.Name,
	}

	if service.Price != nil {
		b.ServicePrice = *service.Price
	}

	if staffMember != nil {
		b.StaffName = &staffMember.Name
	}

	return b
}

func (uc *UseCase) buildResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		ClientID:     b.ClientID,
		ServiceID:    b.ServiceID,
		StaffID:      b.StaffID,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime,
		Status:       string(b.Status),
		ClientName:   b.ClientName,
		ClientPhone:  b.ClientPhone,
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		StaffName:    b.StaffName,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

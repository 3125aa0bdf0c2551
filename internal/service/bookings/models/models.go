package models

import (
	"errors"
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// Actor пользователь, выполняющий операцию.
// Заполняется из заголовков X-User-ID и X-User-Role.
type Actor struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// ListBookingsRequest запрос на получение списка записей
type ListBookingsRequest struct {
	Actor Actor `json:"actor"`

	StaffID          *int64     `json:"staffId,omitempty"`          // Фильтр по сотруднику (опционально)
	ClientID         *int64     `json:"clientId,omitempty"`         // Фильтр по клиенту (опционально)
	Date             *time.Time `json:"date,omitempty"`             // Фильтр по дате (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StaffID:          r.StaffID,
		ClientID:         r.ClientID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену записи
type CancelBookingRequest struct {
	Actor Actor `json:"actor"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Actor  Actor  `json:"actor"`
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"clientId"`
	ServiceID   int64  `json:"serviceId"`
	StaffID     *int64 `json:"staffId,omitempty"`
	BookingDate string `json:"bookingDate"` // "2026-03-15"
	StartTime   string `json:"startTime"`   // "10:00"
	Status      string `json:"status"`

	// Денормализованные данные
	ClientName   string  `json:"clientName"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	StaffName    *string `json:"staffName,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		ClientID:     b.ClientID,
		ServiceID:    b.ServiceID,
		StaffID:      b.StaffID,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
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

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

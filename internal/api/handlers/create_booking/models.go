package create_booking

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/SC-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID    int64   `json:"clientId"`
	ServiceID   int64   `json:"serviceId"`
	StaffID     *int64  `json:"staffId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2026-03-15"
	StartTime   string  `json:"startTime"`   // "10:00" или час "6".."23"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"clientId"`
	ServiceID    int64   `json:"serviceId"`
	StaffID      *int64  `json:"staffId,omitempty"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	Status       string  `json:"status"`
	ClientName   string  `json:"clientName"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	StaffName    *string `json:"staffName,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время. Голый час из формы нормализуется в "HH:00".
	startTime, err := types.NormalizeClockInput(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		Date:      bookingDate,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		ServiceID:    resp.ServiceID,
		StaffID:      resp.StaffID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Status:       resp.Status,
		ClientName:   resp.ClientName,
		ClientPhone:  resp.ClientPhone,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		StaffName:    resp.StaffName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

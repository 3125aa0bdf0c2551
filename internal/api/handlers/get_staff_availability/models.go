package get_staff_availability

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	getStaffAvailability "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StaffID        int64    `json:"staffId"`
	StaffName      string   `json:"staffName"`
	Specialization string   `json:"specialization"`
	Date           string   `json:"date"`           // "2026-03-15"
	AvailableSlots []string `json:"availableSlots"` // ["09:00", "10:00"]
	BookedSlots    []string `json:"bookedSlots"`    // ["11:00"]
}

// ToUseCaseRequest создает запрос use case из параметров URL и query
func ToUseCaseRequest(staffID int64, dateStr string) (*getStaffAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getStaffAvailability.Request{
		StaffID: staffID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStaffAvailability.Response) *AvailabilityResponse {
	available := make([]string, len(resp.AvailableSlots))
	for i, slot := range resp.AvailableSlots {
		available[i] = slot.String()
	}

	booked := make([]string, len(resp.BookedSlots))
	for i, slot := range resp.BookedSlots {
		booked[i] = slot.String()
	}

	return &AvailabilityResponse{
		StaffID:        resp.StaffID,
		StaffName:      resp.StaffName,
		Specialization: string(resp.Specialization),
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: available,
		BookedSlots:    booked,
	}
}

package get_my_schedule

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	staffModels "github.com/m04kA/SC-SchedulingService/internal/service/staff/models"
	getStaffAvailability "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
)

// MyScheduleResponse HTTP response model.
// Availability заполняется только при запросе с параметром date.
type MyScheduleResponse struct {
	Staff        staffModels.StaffResponse `json:"staff"`
	Availability *DayAvailability          `json:"availability,omitempty"`
}

// DayAvailability расклад слотов на запрошенную дату
type DayAvailability struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// ParseDate парсит дату из query параметра
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}

// FromAvailabilityResponse конвертирует ответ use case в DayAvailability
func FromAvailabilityResponse(resp *getStaffAvailability.Response) *DayAvailability {
	available := make([]string, len(resp.AvailableSlots))
	for i, slot := range resp.AvailableSlots {
		available[i] = slot.String()
	}

	booked := make([]string, len(resp.BookedSlots))
	for i, slot := range resp.BookedSlots {
		booked[i] = slot.String()
	}

	return &DayAvailability{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: available,
		BookedSlots:    booked,
	}
}

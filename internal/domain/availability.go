package domain

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// StaffAvailability расклад слотов сотрудника на дату.
// AvailableSlots отсортированы по возрастанию времени;
// BookedSlots - времена активных записей как они лежат в хранилище.
type StaffAvailability struct {
	Date           time.Time
	AvailableSlots []types.TimeString
	BookedSlots    []types.TimeString
}

// HasFreeSlots возвращает true, если на дату есть хотя бы один свободный слот
func (a *StaffAvailability) HasFreeSlots() bool {
	return len(a.AvailableSlots) > 0
}

package get_staff_availability

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступности сотрудника
type Request struct {
	StaffID int64     // ID сотрудника
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с раскладом слотов на дату
type Response struct {
	StaffID        int64                 // ID сотрудника
	StaffName      string                // Имя сотрудника
	Specialization domain.Specialization // Специализация сотрудника
	Date           time.Time             // Дата, на которую запрашивались слоты
	AvailableSlots []types.TimeString    // Свободные слоты по возрастанию времени
	BookedSlots    []types.TimeString    // Времена активных записей
}

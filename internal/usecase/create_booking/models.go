package create_booking

import (
	"time"

	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  int64            // ID клиента
	ServiceID int64            // ID услуги
	StaffID   *int64           // ID сотрудника (опционально - запись может быть без сотрудника)
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота, каноническое "HH:MM"
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64            // ID созданной записи
	ClientID    int64            // ID клиента
	ServiceID   int64            // ID услуги
	StaffID     *int64           // ID сотрудника
	BookingDate time.Time        // Дата записи
	StartTime   types.TimeString // Время начала
	Status      string           // Статус записи

	// Денормализованные данные
	ClientName   string  // Имя клиента
	ClientPhone  *string // Телефон клиента
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	StaffName    *string // Имя сотрудника
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

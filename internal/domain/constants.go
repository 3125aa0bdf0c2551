package domain

// Default schedule values
const (
	DefaultWorkStart           = "09:00"
	DefaultWorkEnd             = "18:00"
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 часов

	// Границы рабочего дня клуба, часы
	MinWorkingHour = 6
	MaxWorkingHour = 23

	MaxNotesLength = 500
)

// Роли пользователей, приходят из заголовка X-User-Role
const (
	RoleClient = "client"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

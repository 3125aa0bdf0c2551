package clubservice

// ClubClient модель клиента из ClubService
type ClubClient struct {
	ID             int64   `json:"id"`
	UserID         *int64  `json:"user_id,omitempty"`
	Name           string  `json:"name"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	MembershipType string  `json:"membership_type"`
}

// Service модель услуги из каталога ClubService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Category        string   `json:"category"`
	IsActive        bool     `json:"is_active"`
}

// ErrorResponse модель ошибки от ClubService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

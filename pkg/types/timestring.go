package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ошибки парсинга времени
var (
	// ErrInvalidFormat возвращается, когда строка не является временем вида HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format")
)

// Границы для "голого" часа (ввод вида "14" означает 14:00)
// Исторический формат старых клиентов, принимается только в диапазоне 6-23
const (
	minBareHour = 6
	maxBareHour = 23
)

// TimeString время дня с точностью до минуты в каноническом виде "HH:MM" (24 часа).
// Хранится и передаётся по проводу как строка - это контракт с хранилищем.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку вида "HH:MM" или "HH:MM:SS" (секунды отбрасываются).
// Возвращает каноническую форму с ведущими нулями.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q is out of range", ErrInvalidFormat, s)
	}

	return FromMinutes(hours*60 + minutes), nil
}

// NormalizeClockInput нормализует пользовательский ввод времени.
// Принимает "HH:MM", "HH:MM:SS" и "голый" час ("14" означает "14:00").
// Голый час принимается только в диапазоне 6-23, иначе ошибка формата.
// Используется на границе API, ядро работает только с каноническим "HH:MM".
func NormalizeClockInput(s string) (TimeString, error) {
	trimmed := strings.TrimSpace(s)
	if strings.Contains(trimmed, ":") {
		return NewTimeStringFromString(trimmed)
	}

	hour, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if hour < minBareHour || hour > maxBareHour {
		return "", fmt.Errorf("%w: bare hour %d is outside %d-%d", ErrInvalidFormat, hour, minBareHour, maxBareHour)
	}

	return FromMinutes(hour * 60), nil
}

// FromMinutes форматирует количество минут с начала суток в "HH:MM".
// Верхняя граница не проверяется - семантические ограничения на стороне вызывающего.
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Minutes возвращает количество минут с начала суток.
// Значение должно быть валидным (см. Validate), иначе результат равен 0.
func (t TimeString) Minutes() int {
	parts := strings.Split(string(t), ":")
	if len(parts) < 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// Validate проверяет, что значение является корректным временем вида "HH:MM"
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Отрицательный результат считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 {
		return "", fmt.Errorf("%w: negative result", ErrInvalidFormat)
	}
	return FromMinutes(total), nil
}

// String возвращает каноническое строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner.
// Postgres возвращает TIME как строку "HH:MM:SS", драйвер может отдать []byte или time.Time.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}

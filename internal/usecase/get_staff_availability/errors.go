package get_staff_availability

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден.
	// Отличается от пустого расписания: сотрудник без настроенных часов
	// существует и имеет ноль слотов.
	ErrStaffNotFound = errors.New("get_staff_availability: staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_staff_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_staff_availability: internal error")
)

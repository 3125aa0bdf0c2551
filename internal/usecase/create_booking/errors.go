package create_booking

import "errors"

var (
	// ErrStaffNotFound возвращается, когда назначаемый сотрудник не найден
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: club client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается при попытке записи на отключённую услугу
	ErrServiceInactive = errors.New("create_booking: service is inactive")

	// Три вида отказа проверки рабочего времени. Разделены, чтобы вызывающая
	// сторона могла объяснить пользователю, ПОЧЕМУ час отклонён, а не только
	// что он отклонён. Каждая ошибка оборачивается сообщением с настроенным
	// рабочим окном сотрудника.

	// ErrBeforeWorkingHours время записи раньше начала рабочего дня
	ErrBeforeWorkingHours = errors.New("create_booking: booking time is before working hours")

	// ErrAtOrAfterWorkingHours время записи позже или ровно в конце рабочего
	// дня - слот не может начинаться в момент закрытия
	ErrAtOrAfterWorkingHours = errors.New("create_booking: booking time is at or after end of working hours")

	// ErrExceedsWorkingHours начало легально, но слот закончился бы
	// позже конца рабочего дня
	ErrExceedsWorkingHours = errors.New("create_booking: booking slot would exceed working hours")

	// ErrSlotTaken возвращается, когда слот уже занят неотменённой записью
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

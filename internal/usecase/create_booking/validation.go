package create_booking

import (
	"fmt"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateWithinWorkingHours проверяет, что время записи вместе со слотом
// целиком лежит внутри рабочего окна сотрудника [work_start, work_end).
//
// Три различимых вида отказа:
//   - раньше начала рабочего дня
//   - позже или ровно в конце рабочего дня (равенство отклоняется -
//     слот не может начинаться в момент закрытия)
//   - начало легально, но слот закончился бы после конца рабочего дня
//
// Каждая ошибка содержит настроенное рабочее окно для показа пользователю.
func validateWithinWorkingHours(staff *domain.StaffMember, startTime types.TimeString) error {
	proposedMinutes := startTime.Minutes()
	workStartMinutes := staff.WorkStart.Minutes()
	workEndMinutes := staff.WorkEnd.Minutes()

	if proposedMinutes < workStartMinutes {
		return fmt.Errorf("%w: время записи %s раньше начала рабочего дня (%s - %s)",
			ErrBeforeWorkingHours, startTime, staff.WorkStart, staff.WorkEnd)
	}

	if proposedMinutes >= workEndMinutes {
		return fmt.Errorf("%w: время записи %s позже или равно окончанию рабочего дня (%s - %s)",
			ErrAtOrAfterWorkingHours, startTime, staff.WorkStart, staff.WorkEnd)
	}

	if slotEnd := proposedMinutes + staff.SlotDurationMinutes; slotEnd > workEndMinutes {
		return fmt.Errorf("%w: занятие с %s закончится в %s, позже окончания рабочего дня (%s - %s)",
			ErrExceedsWorkingHours, startTime, types.FromMinutes(slotEnd), staff.WorkStart, staff.WorkEnd)
	}

	return nil
}

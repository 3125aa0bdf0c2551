package get_staff_availability

import (
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// generateSlots генерирует упорядоченный список кандидатов на начало слота
// для рабочего окна [workStart, workEnd) с шагом slotDuration.
//
// Слот генерируется, только если целиком помещается до конца рабочего окна:
// последний слот t удовлетворяет t + slotDuration <= workEnd.
// Окно с workEnd <= workStart или неположительная длительность дают
// пустой список - у сотрудника без настроенных часов просто нет слотов.
func generateSlots(workStart, workEnd types.TimeString, slotDuration int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if slotDuration <= 0 {
		return slots
	}

	startMinutes := workStart.Minutes()
	endMinutes := workEnd.Minutes()
	if endMinutes <= startMinutes {
		return slots
	}

	for t := startMinutes; t+slotDuration <= endMinutes; t += slotDuration {
		slots = append(slots, types.FromMinutes(t))
	}

	return slots
}

// partitionSlots делит сгенерированные слоты на свободные и занятые.
// booked используется только для проверки принадлежности, дедупликация не нужна.
func partitionSlots(slots []types.TimeString, booked []types.TimeString) []types.TimeString {
	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, taken := bookedSet[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}

package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

func testStaffMember(workStart, workEnd types.TimeString, slotDuration int) *domain.StaffMember {
	return &domain.StaffMember{
		ID:                  1,
		Name:                "Игорь Смирнов",
		Specialization:      domain.SpecializationMasseur,
		WorkStart:           workStart,
		WorkEnd:             workEnd,
		SlotDurationMinutes: slotDuration,
	}
}

func TestValidateWithinWorkingHours(t *testing.T) {
	standardDay := testStaffMember("09:00", "18:00", 60)

	tests := []struct {
		name      string
		staff     *domain.StaffMember
		startTime types.TimeString
		wantErr   error
	}{
		{name: "start of day", staff: standardDay, startTime: "09:00"},
		{name: "last full slot", staff: standardDay, startTime: "17:00"},
		{name: "middle of day", staff: standardDay, startTime: "13:00"},
		{name: "just before opening", staff: standardDay, startTime: "08:59", wantErr: ErrBeforeWorkingHours},
		{name: "well before opening", staff: standardDay, startTime: "06:00", wantErr: ErrBeforeWorkingHours},
		{name: "exactly at closing", staff: standardDay, startTime: "18:00", wantErr: ErrAtOrAfterWorkingHours},
		{name: "after closing", staff: standardDay, startTime: "20:00", wantErr: ErrAtOrAfterWorkingHours},
		{name: "slot runs past closing", staff: standardDay, startTime: "17:30", wantErr: ErrExceedsWorkingHours},

		{name: "short slots fit at edge", staff: testStaffMember("09:00", "12:00", 30), startTime: "11:30"},
		{name: "short slots overrun", staff: testStaffMember("09:00", "12:00", 30), startTime: "11:45", wantErr: ErrExceedsWorkingHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWithinWorkingHours(tt.staff, tt.startTime)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// Сообщение содержит настроенное рабочее окно
				assert.Contains(t, err.Error(), tt.staff.WorkStart.String())
				assert.Contains(t, err.Error(), tt.staff.WorkEnd.String())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	validDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	valid := func() *Request {
		return &Request{
			ClientID:  1,
			ServiceID: 2,
			Date:      validDate,
			StartTime: "10:00",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, validateRequest(valid()))
	})

	t.Run("missing client", func(t *testing.T) {
		req := valid()
		req.ClientID = 0
		require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing service", func(t *testing.T) {
		req := valid()
		req.ServiceID = -1
		require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		req := valid()
		req.Date = time.Time{}
		require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing start time", func(t *testing.T) {
		req := valid()
		req.StartTime = ""
		require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := valid()
		req.StartTime = "25:99"
		require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := valid()
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'a'
		}
		notes := string(long)
		req.Notes = &notes
		require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

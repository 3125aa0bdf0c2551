package get_staff_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

type fakeStaffRepo struct {
	staff map[int64]*domain.StaffMember
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return member, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StaffID != nil && (b.StaffID == nil || *b.StaffID != *filter.StaffID) {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestStaff(id int64) *domain.StaffMember {
	return &domain.StaffMember{
		ID:                  id,
		Name:                "Анна Петрова",
		Specialization:      domain.SpecializationTrainer,
		WorkStart:           "09:00",
		WorkEnd:             "12:00",
		SlotDurationMinutes: 60,
	}
}

func TestExecute_UnknownStaff(t *testing.T) {
	uc := NewUseCase(&fakeStaffRepo{staff: map[int64]*domain.StaffMember{}}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: 42,
		Date:    time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := NewUseCase(&fakeStaffRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StaffID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StaffID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PartitionsSlots(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	staffID := int64(7)

	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StaffID: &staffID, BookingDate: date, StartTime: "10:00", Status: domain.StatusScheduled},
			{ID: 2, StaffID: &staffID, BookingDate: date, StartTime: "11:00", Status: domain.StatusCompleted},
		},
	}

	uc := NewUseCase(
		&fakeStaffRepo{staff: map[int64]*domain.StaffMember{staffID: newTestStaff(staffID)}},
		bookingRepo,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: staffID, Date: date})
	require.NoError(t, err)

	// Завершённая запись продолжает занимать слот, свободен только 09:00
	assert.Equal(t, []types.TimeString{"09:00"}, resp.AvailableSlots)
	assert.ElementsMatch(t, []types.TimeString{"10:00", "11:00"}, resp.BookedSlots)
	assert.Equal(t, "Анна Петрова", resp.StaffName)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	staffID := int64(7)

	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StaffID: &staffID, BookingDate: date, StartTime: "10:00", Status: domain.StatusCancelled},
		},
	}

	uc := NewUseCase(
		&fakeStaffRepo{staff: map[int64]*domain.StaffMember{staffID: newTestStaff(staffID)}},
		bookingRepo,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: staffID, Date: date})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

func TestExecute_EmptyScheduleIsNotAnError(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	staffID := int64(9)

	member := newTestStaff(staffID)
	member.WorkStart = "18:00"
	member.WorkEnd = "09:00"

	uc := NewUseCase(
		&fakeStaffRepo{staff: map[int64]*domain.StaffMember{staffID: member}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: staffID, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

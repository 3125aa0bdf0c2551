package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SC-SchedulingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelled []int64
	updated   map[int64]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		updated:  make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StaffID != nil && (b.StaffID == nil || *b.StaffID != *filter.StaffID) {
			continue
		}
		if filter.ClientID != nil && b.ClientID != *filter.ClientID {
			continue
		}
		if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updated[id] = status
	return nil
}

type fakeStaffRepo struct {
	byUser map[int64]*domain.StaffMember
}

func (f *fakeStaffRepo) GetByUserID(_ context.Context, userID int64) (*domain.StaffMember, error) {
	member, ok := f.byUser[userID]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return member, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстура: сотрудник (staff_id=5, user_id=50) и две записи
func newTestService() (*Service, *fakeBookingRepo) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	bookings := newFakeBookingRepo(
		&domain.Booking{
			ID: 1, ClientID: 10, ServiceID: 20, StaffID: ptr.Ptr(int64(5)),
			BookingDate: date, StartTime: "10:00", Status: domain.StatusScheduled,
		},
		&domain.Booking{
			ID: 2, ClientID: 11, ServiceID: 20,
			BookingDate: date, StartTime: "11:00", Status: domain.StatusCompleted,
		},
	)

	staff := &fakeStaffRepo{byUser: map[int64]*domain.StaffMember{
		50: {ID: 5, UserID: ptr.Ptr(int64(50)), Name: "Анна Петрова"},
	}}

	return NewService(bookings, staff, nopLogger{}), bookings
}

func TestGetByID_AccessControl(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("client sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 1, models.Actor{UserID: 10, Role: domain.RoleClient})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("client denied foreign booking", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 1, models.Actor{UserID: 11, Role: domain.RoleClient})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff sees assigned booking", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 1, models.Actor{UserID: 50, Role: domain.RoleStaff})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("staff denied unassigned booking", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 2, models.Actor{UserID: 50, Role: domain.RoleStaff})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 2, models.Actor{UserID: 1, Role: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 404, models.Actor{UserID: 1, Role: domain.RoleAdmin})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList_RolePinsFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("client pinned to own bookings", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListBookingsRequest{
			Actor: models.Actor{UserID: 10, Role: domain.RoleClient},
			// Попытка посмотреть чужие записи игнорируется
			ClientID: ptr.Ptr(int64(11)),
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(10), resp.Bookings[0].ClientID)
	})

	t.Run("staff pinned to assigned bookings", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListBookingsRequest{
			Actor: models.Actor{UserID: 50, Role: domain.RoleStaff},
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(1), resp.Bookings[0].ID)
	})

	t.Run("staff without profile rejected", func(t *testing.T) {
		_, err := svc.List(ctx, &models.ListBookingsRequest{
			Actor: models.Actor{UserID: 999, Role: domain.RoleStaff},
		})
		require.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("admin sees all", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListBookingsRequest{
			Actor: models.Actor{UserID: 1, Role: domain.RoleAdmin},
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels own scheduled booking", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			Actor: models.Actor{UserID: 10, Role: domain.RoleClient},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{
			Actor: models.Actor{UserID: 1, Role: domain.RoleAdmin},
		})
		require.ErrorIs(t, err, ErrCannotCancel)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("foreign client denied", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			Actor: models.Actor{UserID: 11, Role: domain.RoleClient},
		})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("staff completes own booking", func(t *testing.T) {
		svc, repo := newTestService()
		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Actor:  models.Actor{UserID: 50, Role: domain.RoleStaff},
			Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, domain.StatusCompleted, repo.updated[1])
	})

	t.Run("client cannot update status", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Actor:  models.Actor{UserID: 10, Role: domain.RoleClient},
			Status: "completed",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Actor:  models.Actor{UserID: 1, Role: domain.RoleAdmin},
			Status: "archived",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("cancellation goes through dedicated endpoint", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Actor:  models.Actor{UserID: 1, Role: domain.RoleAdmin},
			Status: "cancelled",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("completed booking is final", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{
			Actor:  models.Actor{UserID: 1, Role: domain.RoleAdmin},
			Status: "completed",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})
}

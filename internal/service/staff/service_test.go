package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SC-SchedulingService/internal/service/staff/models"
	"github.com/m04kA/SC-SchedulingService/pkg/ptr"
)

type fakeStaffRepo struct {
	staff map[int64]*domain.StaffMember

	lastUpdate *domain.ScheduleUpdate
}

func newFakeStaffRepo(members ...*domain.StaffMember) *fakeStaffRepo {
	repo := &fakeStaffRepo{staff: make(map[int64]*domain.StaffMember)}
	for _, m := range members {
		repo.staff[m.ID] = m
	}
	return repo
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) GetByUserID(_ context.Context, userID int64) (*domain.StaffMember, error) {
	for _, m := range f.staff {
		if m.UserID != nil && *m.UserID == userID {
			return m, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(_ context.Context) ([]*domain.StaffMember, error) {
	result := make([]*domain.StaffMember, 0, len(f.staff))
	for _, m := range f.staff {
		result = append(result, m)
	}
	return result, nil
}

func (f *fakeStaffRepo) UpdateSchedule(_ context.Context, id int64, update domain.ScheduleUpdate) (*domain.StaffMember, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}

	f.lastUpdate = &update
	if update.WorkStart != nil {
		member.WorkStart = *update.WorkStart
	}
	if update.WorkEnd != nil {
		member.WorkEnd = *update.WorkEnd
	}
	if update.SlotDurationMinutes != nil {
		member.SlotDurationMinutes = *update.SlotDurationMinutes
	}
	return member, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestMember() *domain.StaffMember {
	return &domain.StaffMember{
		ID:                  5,
		UserID:              ptr.Ptr(int64(50)),
		Name:                "Анна Петрова",
		Specialization:      domain.SpecializationTrainer,
		WorkStart:           "09:00",
		WorkEnd:             "18:00",
		SlotDurationMinutes: 60,
	}
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("admin updates any staff", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:              1,
			Role:                domain.RoleAdmin,
			WorkStart:           ptr.Ptr("10:00"),
			WorkEnd:             ptr.Ptr("19:00"),
			SlotDurationMinutes: ptr.Ptr(30),
		})
		require.NoError(t, err)
		assert.Equal(t, "10:00", resp.WorkStart)
		assert.Equal(t, "19:00", resp.WorkEnd)
		assert.Equal(t, 30, resp.SlotDurationMinutes)
	})

	t.Run("staff updates own schedule", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:    50,
			Role:      domain.RoleStaff,
			WorkStart: ptr.Ptr("08:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "08:00", resp.WorkStart)
		// Незаданные поля не изменились
		assert.Equal(t, "18:00", resp.WorkEnd)
	})

	t.Run("staff denied foreign schedule", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:    51,
			Role:      domain.RoleStaff,
			WorkStart: ptr.Ptr("08:00"),
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("client denied", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:    10,
			Role:      domain.RoleClient,
			WorkStart: ptr.Ptr("08:00"),
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("bare hour input normalized", func(t *testing.T) {
		repo := newFakeStaffRepo(newTestMember())
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:    1,
			Role:      domain.RoleAdmin,
			WorkStart: ptr.Ptr("8"),
			WorkEnd:   ptr.Ptr("20"),
		})
		require.NoError(t, err)
		assert.Equal(t, "08:00", resp.WorkStart)
		assert.Equal(t, "20:00", resp.WorkEnd)
	})

	t.Run("bare hour outside club bounds rejected", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:    1,
			Role:      domain.RoleAdmin,
			WorkStart: ptr.Ptr("5"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("slot duration bounds enforced", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:              1,
			Role:                domain.RoleAdmin,
			SlotDurationMinutes: ptr.Ptr(10),
		})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID:              1,
			Role:                domain.RoleAdmin,
			SlotDurationMinutes: ptr.Ptr(481),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
			UserID: 1,
			Role:   domain.RoleAdmin,
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown staff", func(t *testing.T) {
		svc := NewService(newFakeStaffRepo(), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 404, &models.UpdateScheduleRequest{
			UserID:    1,
			Role:      domain.RoleAdmin,
			WorkStart: ptr.Ptr("08:00"),
		})
		require.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestGetByUserID(t *testing.T) {
	svc := NewService(newFakeStaffRepo(newTestMember()), nopLogger{})

	resp, err := svc.GetByUserID(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)

	_, err = svc.GetByUserID(context.Background(), 404)
	require.ErrorIs(t, err, ErrStaffNotFound)
}

package get_staff_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	getStaffAvailability "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

type fakeUseCase struct {
	resp *getStaffAvailability.Response
	err  error

	gotReq *getStaffAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getStaffAvailability.Request) (*getStaffAvailability.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serveRequest(t *testing.T, uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/staff/{staffId}/availability", handler.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getStaffAvailability.Response{
			StaffID:        5,
			StaffName:      "Анна Петрова",
			Specialization: domain.SpecializationTrainer,
			Date:           time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			AvailableSlots: []types.TimeString{"09:00", "11:00"},
			BookedSlots:    []types.TimeString{"10:00"},
		},
	}

	rec := serveRequest(t, uc, "/api/v1/staff/5/availability?date=2026-03-16")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(5), resp.StaffID)
	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, []string{"09:00", "11:00"}, resp.AvailableSlots)
	assert.Equal(t, []string{"10:00"}, resp.BookedSlots)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.StaffID)
}

func TestHandle_BadInput(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		rec := serveRequest(t, &fakeUseCase{}, "/api/v1/staff/5/availability")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := serveRequest(t, &fakeUseCase{}, "/api/v1/staff/5/availability?date=16.03.2026")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric staff id", func(t *testing.T) {
		rec := serveRequest(t, &fakeUseCase{}, "/api/v1/staff/abc/availability?date=2026-03-16")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandle_StaffNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getStaffAvailability.ErrStaffNotFound}

	rec := serveRequest(t, uc, "/api/v1/staff/404/availability?date=2026-03-16")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

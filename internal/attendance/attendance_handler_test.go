package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	attendanceerrors "github.com/SaiAryan1784/HRMS-Lite/internal/attendance/errors"
	"github.com/SaiAryan1784/HRMS-Lite/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	markFn         func(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	listFn         func(ctx context.Context, f Filter, page, limit int) ([]AttendanceResponse, int64, error)
	updateStatusFn func(ctx context.Context, id string, req UpdateStatusRequest) (AttendanceResponse, error)
}

func (f *fakeService) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	return f.markFn(ctx, req)
}
func (f *fakeService) List(ctx context.Context, filter Filter, page, limit int) ([]AttendanceResponse, int64, error) {
	return f.listFn(ctx, filter, page, limit)
}
func (f *fakeService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (AttendanceResponse, error) {
	return f.updateStatusFn(ctx, id, req)
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	h := NewHandler(svc)
	grp := r.Group("/api/attendance")
	grp.GET("", h.List)
	grp.POST("", h.Mark)
	grp.PUT("/:id", h.UpdateStatus)
	return r
}

func TestHandler_Mark_Created(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeService{
		markFn: func(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
			return AttendanceResponse{
				ID:         id,
				EmployeeID: req.EmployeeID,
				Date:       "2024-01-10T00:00:00Z",
				Status:     req.Status,
			}, nil
		},
	}
	r := newTestRouter(svc)

	body := `{"employeeId":"` + uuid.NewString() + `","date":"2024-01-10","status":"PRESENT"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AttendanceResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "PRESENT", resp.Status)
}

func TestHandler_Mark_InvalidStatus(t *testing.T) {
	svc := &fakeService{
		markFn: func(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
			t.Fatal("service must not be called on validation failure")
			return AttendanceResponse{}, nil
		},
	}
	r := newTestRouter(svc)

	body := `{"employeeId":"` + uuid.NewString() + `","date":"2024-01-10","status":"LATE"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
	assert.Contains(t, w.Body.String(), "status")
}

func TestHandler_Mark_DuplicateConflict(t *testing.T) {
	svc := &fakeService{
		markFn: func(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
			return AttendanceResponse{}, attendanceerrors.ErrDuplicateForDate
		},
	}
	r := newTestRouter(svc)

	body := `{"employeeId":"` + uuid.NewString() + `","date":"2024-01-10","status":"PRESENT"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Attendance already marked for this date")
}

func TestHandler_List_PaginatedEnvelope(t *testing.T) {
	svc := &fakeService{
		listFn: func(ctx context.Context, f Filter, page, limit int) ([]AttendanceResponse, int64, error) {
			return []AttendanceResponse{{ID: uuid.NewString(), Status: "PRESENT"}}, 23, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance?page=2&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []AttendanceResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, int64(23), envelope.Meta.Total)
	assert.Equal(t, 2, envelope.Meta.Page)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
}

func TestHandler_List_IgnoresUnparseableFilters(t *testing.T) {
	var gotFilter Filter
	svc := &fakeService{
		listFn: func(ctx context.Context, f Filter, page, limit int) ([]AttendanceResponse, int64, error) {
			gotFilter = f
			return []AttendanceResponse{}, 0, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance?employeeId=notauuid&date=garbage", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotFilter.EmployeeID)
	assert.Nil(t, gotFilter.Date)
}

func TestHandler_List_AppliesValidFilters(t *testing.T) {
	employeeID := uuid.NewString()
	var gotFilter Filter
	var gotPage, gotLimit int
	svc := &fakeService{
		listFn: func(ctx context.Context, f Filter, page, limit int) ([]AttendanceResponse, int64, error) {
			gotFilter, gotPage, gotLimit = f, page, limit
			return []AttendanceResponse{}, 0, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance?employeeId="+employeeID+"&date=2024-01-10&limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, employeeID, gotFilter.EmployeeID)
	if assert.NotNil(t, gotFilter.Date) {
		assert.Equal(t, "2024-01-10", gotFilter.Date.Format("2006-01-02"))
	}
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotLimit)
}

func TestHandler_UpdateStatus_OK(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeService{
		updateStatusFn: func(ctx context.Context, gotID string, req UpdateStatusRequest) (AttendanceResponse, error) {
			assert.Equal(t, id, gotID)
			return AttendanceResponse{ID: gotID, Status: req.Status}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/attendance/"+id, strings.NewReader(`{"status":"ABSENT"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ABSENT"`)
}

func TestHandler_UpdateStatus_MalformedID(t *testing.T) {
	svc := &fakeService{
		updateStatusFn: func(ctx context.Context, id string, req UpdateStatusRequest) (AttendanceResponse, error) {
			t.Fatal("service must not be called for a malformed id")
			return AttendanceResponse{}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/attendance/notauuid", strings.NewReader(`{"status":"ABSENT"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Attendance record not found")
}

func TestHandler_UpdateStatus_InvalidBody(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/attendance/"+uuid.NewString(), strings.NewReader(`{"status":"HOLIDAY"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package employee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	employeeerrors "github.com/SaiAryan1784/HRMS-Lite/internal/employee/errors"
	"github.com/SaiAryan1784/HRMS-Lite/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	getAllFn  func(ctx context.Context) ([]EmployeeResponse, error)
	getByIDFn func(ctx context.Context, id string) (EmployeeResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	h := NewHandler(svc)
	grp := r.Group("/api/employees")
	grp.GET("", h.GetAll)
	grp.GET("/:id", h.GetByID)
	grp.POST("", h.Create)
	grp.DELETE("/:id", h.Delete)
	return r
}

func TestHandler_GetByID_OK(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeService{
		getByIDFn: func(ctx context.Context, gotID string) (EmployeeResponse, error) {
			assert.Equal(t, id, gotID)
			return EmployeeResponse{ID: gotID, FullName: "Alice Smith"}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Smith")
}

func TestHandler_GetByID_MalformedID(t *testing.T) {
	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id string) (EmployeeResponse, error) {
			t.Fatal("service must not be called for a malformed id")
			return EmployeeResponse{}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees/notauuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}

func TestHandler_Create_Created(t *testing.T) {
	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
			return EmployeeResponse{
				ID:         uuid.NewString(),
				FullName:   req.FullName,
				Email:      req.Email,
				Department: req.Department,
				CreatedAt:  "2024-01-10T09:00:00Z",
			}, nil
		},
	}
	r := newTestRouter(svc)

	body := `{"fullName":"Alice Smith","email":"alice@example.com","department":"Engineering"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp EmployeeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice Smith", resp.FullName)
	assert.NotEmpty(t, resp.ID)
}

func TestHandler_Create_ValidationErrors(t *testing.T) {
	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
			t.Fatal("service must not be called on validation failure")
			return EmployeeResponse{}, nil
		},
	}
	r := newTestRouter(svc)

	body := `{"fullName":"","email":"not-an-email","department":"Engineering"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Field names follow the json tags the client sent.
	assert.Contains(t, w.Body.String(), `"fullName"`)
	assert.Contains(t, w.Body.String(), "Invalid email address")
}

func TestHandler_Create_DuplicateEmail(t *testing.T) {
	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeEmailExists
		},
	}
	r := newTestRouter(svc)

	body := `{"fullName":"Alice Smith","email":"alice@example.com","department":"Engineering"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Employee with this email already exists")
}

func TestHandler_GetAll_BareArray(t *testing.T) {
	svc := &fakeService{
		getAllFn: func(ctx context.Context) ([]EmployeeResponse, error) {
			return []EmployeeResponse{
				{ID: uuid.NewString(), FullName: "Alice Smith"},
				{ID: uuid.NewString(), FullName: "Bob Jones"},
			}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "["))

	var resp []EmployeeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_Delete_NoContent(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeService{
		deleteFn: func(ctx context.Context, gotID string) error {
			assert.Equal(t, id, gotID)
			return nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/employees/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandler_Delete_MalformedID(t *testing.T) {
	svc := &fakeService{
		deleteFn: func(ctx context.Context, id string) error {
			t.Fatal("service must not be called for a malformed id")
			return nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/employees/notauuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}

func TestHandler_Delete_Blocked(t *testing.T) {
	svc := &fakeService{
		deleteFn: func(ctx context.Context, id string) error {
			return employeeerrors.ErrEmployeeHasAttendance
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/employees/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

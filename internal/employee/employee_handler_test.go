package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/shashitejag2k2/employee-management/internal/employee"
	employeeerrors "github.com/shashitejag2k2/employee-management/internal/employee/errors"
	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
	"github.com/shashitejag2k2/employee-management/internal/shared/response"
)

type fakeService struct {
	createFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	listFn   func(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, response.PageMeta, error)
	getFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeService) List(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, response.PageMeta, error) {
	return f.listFn(ctx, req)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	h := employee.NewHandler(svc, zap.NewNop())
	employee.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBody() gin.H {
	return gin.H{
		"firstName":    "Ada",
		"lastName":     "Lovelace",
		"email":        "ada@example.com",
		"designation":  "Engineer",
		"salary":       "50000.00",
		"departmentId": uuid.NewString(),
		"role":         "EMPLOYEE",
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{
					ID:     uuid.NewString(),
					Email:  req.Email,
					Salary: req.Salary,
					Status: "ACTIVE",
				}, nil
			},
		}
		w := doJSON(t, setupRouter(svc), http.MethodPost, "/api/v1/staff", createBody())

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, "ACTIVE", resp.Status)
	})

	t.Run("unknown role fails binding", func(t *testing.T) {
		body := createBody()
		body["role"] = "SUPERUSER"

		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPost, "/api/v1/staff", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errBody response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Equal(t, apperror.CodeValidation, errBody.Code)
		if assert.Len(t, errBody.Details, 1) {
			assert.Equal(t, "role", errBody.Details[0].Field)
		}
	})

	t.Run("malformed json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/staff", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(&fakeService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errBody response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Equal(t, apperror.CodeMalformedRequest, errBody.Code)
	})

	t.Run("email conflict", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, _ employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeEmailAlreadyExists
			},
		}
		w := doJSON(t, setupRouter(svc), http.MethodPost, "/api/v1/staff", createBody())

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	t.Run("filters pass through the query string", func(t *testing.T) {
		deptID := uuid.NewString()
		svc := &fakeService{
			listFn: func(_ context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, response.PageMeta, error) {
				assert.Equal(t, deptID, req.DepartmentID)
				assert.Equal(t, "HR", req.Role)
				assert.Equal(t, "ACTIVE", req.Status)
				return nil, response.NewPageMeta(0, 20, 0), nil
			},
		}
		w := doJSON(t, setupRouter(svc), http.MethodGet,
			"/api/v1/staff?departmentId="+deptID+"&role=HR&status=ACTIVE", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("defaults apply when page and size are absent", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(_ context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, response.PageMeta, error) {
				assert.Equal(t, 0, req.Page)
				assert.Equal(t, 20, req.Size)
				return nil, response.NewPageMeta(0, 20, 0), nil
			},
		}
		w := doJSON(t, setupRouter(svc), http.MethodGet, "/api/v1/staff", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed departmentId filter is rejected", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodGet,
			"/api/v1/staff?departmentId=not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty page keeps the items array non-null", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(_ context.Context, _ employee.ListEmployeesRequest) ([]employee.EmployeeResponse, response.PageMeta, error) {
				return []employee.EmployeeResponse{}, response.NewPageMeta(0, 20, 0), nil
			},
		}
		w := doJSON(t, setupRouter(svc), http.MethodGet, "/api/v1/staff", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("full replacement round-trips", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeService{
			updateFn: func(_ context.Context, gotID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, "INACTIVE", req.Status)
				assert.True(t, req.Salary.Equal(decimal.RequireFromString("72000")))
				return employee.EmployeeResponse{ID: gotID, Status: req.Status}, nil
			},
		}
		body := createBody()
		body["salary"] = "72000"
		body["status"] = "INACTIVE"

		w := doJSON(t, setupRouter(svc), http.MethodPut, "/api/v1/staff/"+id, body)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("status is required on update", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPut,
			"/api/v1/staff/"+uuid.NewString(), createBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("soft delete returns no content", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(_ context.Context, _ string) error { return nil },
		}
		w := doJSON(t, setupRouter(svc), http.MethodDelete, "/api/v1/staff/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing employee", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(_ context.Context, _ string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		w := doJSON(t, setupRouter(svc), http.MethodDelete, "/api/v1/staff/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/shashitejag2k2/employee-management/internal/auth"
	autherrors "github.com/shashitejag2k2/employee-management/internal/auth/errors"
	"github.com/shashitejag2k2/employee-management/internal/employee"
	"github.com/shashitejag2k2/employee-management/internal/middleware"
	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
	"github.com/shashitejag2k2/employee-management/internal/shared/response"
)

type fakeService struct {
	loginFn    func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	registerFn func(ctx context.Context, req auth.RegisterRequest) (employee.EmployeeResponse, error)
}

func (f *fakeService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeService) Register(ctx context.Context, req auth.RegisterRequest) (employee.EmployeeResponse, error) {
	return f.registerFn(ctx, req)
}

func setupRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(middleware.CorrelationID(zap.NewNop()))
	h := auth.NewHandler(svc, zap.NewNop())
	noLimit := func(c *gin.Context) { c.Next() }
	auth.RegisterRoutes(r.Group("/api/v1"), h, noLimit)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("token response", func(t *testing.T) {
		svc := &fakeService{
			loginFn: func(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				assert.Equal(t, "ada@example.com", req.Email)
				return auth.LoginResponse{
					AccessToken: "opaque-token",
					TokenType:   "Bearer",
					ExpiresIn:   3600,
				}, nil
			},
		}
		w := doJSON(t, setupRouter(svc), "/api/v1/auth/login",
			gin.H{"email": "ada@example.com", "password": "s3cret-password"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp auth.LoginResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Equal(t, "opaque-token", resp.AccessToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeService{
			loginFn: func(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		w := doJSON(t, setupRouter(svc), "/api/v1/auth/login",
			gin.H{"email": "ada@example.com", "password": "wrong-password"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperror.CodeUnauthorized, body.Code)
	})

	t.Run("short password fails binding before the service runs", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), "/api/v1/auth/login",
			gin.H{"email": "ada@example.com", "password": "short"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperror.CodeValidation, body.Code)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "password", body.Details[0].Field)
		}
	})

	t.Run("correlation id from the request header lands in error bodies", func(t *testing.T) {
		svc := &fakeService{
			loginFn: func(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		header := http.Header{}
		header.Set(middleware.CorrelationIDHeader, "cid-12345")

		w := doJSON(t, setupRouter(svc), "/api/v1/auth/login",
			gin.H{"email": "ada@example.com", "password": "wrong-password"}, header)

		assert.Equal(t, "cid-12345", w.Header().Get(middleware.CorrelationIDHeader))

		var body response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "cid-12345", body.CorrelationID)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	registerBody := func() gin.H {
		return gin.H{
			"firstName":    "Ada",
			"lastName":     "Lovelace",
			"email":        "ada@example.com",
			"designation":  "Engineer",
			"salary":       "50000",
			"departmentId": uuid.NewString(),
			"role":         "EMPLOYEE",
			"password":     "s3cret-password",
		}
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			registerFn: func(_ context.Context, req auth.RegisterRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{
					ID:     uuid.NewString(),
					Email:  req.Email,
					Status: "ACTIVE",
				}, nil
			},
		}
		w := doJSON(t, setupRouter(svc), "/api/v1/auth/register", registerBody(), nil)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.NotContains(t, w.Body.String(), "s3cret-password")
	})

	t.Run("email already registered", func(t *testing.T) {
		svc := &fakeService{
			registerFn: func(_ context.Context, _ auth.RegisterRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}
		w := doJSON(t, setupRouter(svc), "/api/v1/auth/register", registerBody(), nil)

		assert.Equal(t, http.StatusConflict, w.Code)

		var body response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperror.CodeConflict, body.Code)
	})

	t.Run("missing password fails binding", func(t *testing.T) {
		body := registerBody()
		delete(body, "password")

		w := doJSON(t, setupRouter(&fakeService{}), "/api/v1/auth/register", body, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

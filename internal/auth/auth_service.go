package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/shashitejag2k2/employee-management/internal/auth/errors"
	"github.com/shashitejag2k2/employee-management/internal/employee"
	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
	"github.com/shashitejag2k2/employee-management/internal/shared/contextutil"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (employee.EmployeeResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	bcryptCost   int
	tokenTTL     time.Duration
	dummyHash    []byte
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	bcryptCost int,
	tokenTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	// Hash of a throwaway value, compared against when no credential
	// exists so the missing-email path costs the same as a mismatch.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		bcryptCost:   bcryptCost,
		tokenTTL:     tokenTTL,
		dummyHash:    dummyHash,
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	cid := contextutil.GetCorrelationID(ctx)
	s.logger.Debug("login requested",
		zap.String("correlation_id", cid),
		zap.String("email", req.Email),
	)

	cred, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
			s.logger.Warn("login failed", zap.String("correlation_id", cid))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login credential lookup failed", zap.String("correlation_id", cid), zap.Error(err))
		return LoginResponse{}, mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed", zap.String("correlation_id", cid))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateOpaqueToken()
	if err != nil {
		s.logger.Error("token generation failed", zap.String("correlation_id", cid), zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	}

	s.logger.Info("login success",
		zap.String("correlation_id", cid),
		zap.String("employee_id", cred.EmployeeID.String()),
	)
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (employee.EmployeeResponse, error) {
	cid := contextutil.GetCorrelationID(ctx)
	s.logger.Debug("register requested",
		zap.String("correlation_id", cid),
		zap.String("email", req.Email),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return employee.EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	}

	var empl *employee.Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		eqtx := s.employeeRepo.WithTx(tx)

		// A stale credential without an employee row (or the reverse)
		// must still block re-registration, so both collections are
		// checked inside the same transaction as the writes.
		emplExists, err := eqtx.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		credExists, err := qtx.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if emplExists || credExists {
			return autherrors.ErrEmailAlreadyRegistered
		}

		empl = &employee.Employee{
			ID:           uuid.New(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        req.Phone,
			Designation:  req.Designation,
			Salary:       req.Salary.Round(2),
			DepartmentID: uuid.MustParse(req.DepartmentID),
			Role:         employee.Role(req.Role),
			Status:       employee.StatusActive,
		}
		if err := eqtx.Create(ctx, empl); err != nil {
			return err
		}

		return qtx.Create(ctx, &Credential{
			EmployeeID:   empl.ID,
			Email:        empl.Email,
			Role:         empl.Role,
			PasswordHash: string(hashed),
		})
	})
	if err != nil {
		s.logger.Error("register failed", zap.String("correlation_id", cid), zap.Error(err))
		return employee.EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register success",
		zap.String("correlation_id", cid),
		zap.String("employee_id", empl.ID.String()),
	)
	return toEmployeeResponse(*empl), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Duplicate key on either the employee or credential email
		// index: two concurrent registrations raced past the existence
		// checks and exactly one insert lost.
		if pgErr.Code == "23505" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.Wrap(err, apperror.CodeDatabaseError, "Database error", http.StatusInternalServerError)
}

func toEmployeeResponse(empl employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           empl.ID.String(),
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		Email:        empl.Email,
		Phone:        empl.Phone,
		Designation:  empl.Designation,
		Salary:       empl.Salary,
		DepartmentID: empl.DepartmentID.String(),
		Role:         string(empl.Role),
		Status:       string(empl.Status),
		CreatedAt:    empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

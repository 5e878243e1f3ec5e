package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	employeeerrors "github.com/shashitejag2k2/employee-management/internal/employee/errors"
	"github.com/shashitejag2k2/employee-management/internal/shared/contextutil"
	"github.com/shashitejag2k2/employee-management/internal/shared/query"
	"github.com/shashitejag2k2/employee-management/internal/shared/response"
)

// sortableFields maps exposed sort field names to database columns.
var sortableFields = map[string]string{
	"id":          "id",
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"designation": "designation",
	"salary":      "salary",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, response.PageMeta, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	cid := contextutil.GetCorrelationID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("correlation_id", cid),
		zap.String("email", req.Email),
	)

	var empl *Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrEmployeeEmailAlreadyExists
		}

		empl = &Employee{
			ID:           uuid.New(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        req.Phone,
			Designation:  req.Designation,
			Salary:       req.Salary.Round(2),
			DepartmentID: uuid.MustParse(req.DepartmentID),
			Role:         Role(req.Role),
			Status:       StatusActive,
		}
		return qtx.Create(ctx, empl)
	})
	if err != nil {
		s.logger.Error("create employee failed", zap.String("correlation_id", cid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("correlation_id", cid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) List(
	ctx context.Context,
	req ListEmployeesRequest,
) ([]EmployeeResponse, response.PageMeta, error) {
	s.logger.Debug("list employees requested",
		zap.Int("page", req.Page),
		zap.Int("size", req.Size),
		zap.String("sort", req.Sort),
		zap.String("department_id", req.DepartmentID),
		zap.String("role", req.Role),
		zap.String("status", req.Status),
	)

	sort, err := query.ParseSort(req.Sort, sortableFields)
	if err != nil {
		return nil, response.PageMeta{}, mapRepositoryError(err)
	}
	page := query.NormalizePage(req.Page, req.Size)

	filter := Filter{}
	if req.DepartmentID != "" {
		deptID := uuid.MustParse(req.DepartmentID)
		filter.DepartmentID = &deptID
	}
	if req.Role != "" {
		filter.Role = &req.Role
	}
	if req.Status != "" {
		filter.Status = &req.Status
	}

	empls, total, err := s.repo.FindPage(ctx, filter, sort, page)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, response.PageMeta{}, mapRepositoryError(err)
	}

	meta := response.NewPageMeta(page.Number, page.Size, total)
	return mapToListResponse(empls), meta, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (EmployeeResponse, error) {
	emplID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, emplID)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	cid := contextutil.GetCorrelationID(ctx)
	emplID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	var empl *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err = qtx.FindByID(ctx, emplID)
		if err != nil {
			return err
		}

		// Uniqueness check excludes the employee's own id so keeping
		// the same email is not a conflict.
		exists, err := qtx.ExistsByEmailExcluding(ctx, req.Email, emplID)
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrEmployeeEmailAlreadyExists
		}

		empl.FirstName = req.FirstName
		empl.LastName = req.LastName
		empl.Email = req.Email
		empl.Phone = req.Phone
		empl.Designation = req.Designation
		empl.Salary = req.Salary.Round(2)
		empl.DepartmentID = uuid.MustParse(req.DepartmentID)
		empl.Role = Role(req.Role)
		empl.Status = Status(req.Status)
		return qtx.Update(ctx, empl)
	})
	if err != nil {
		s.logger.Error("update employee failed",
			zap.String("correlation_id", cid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("correlation_id", cid),
		zap.String("employee_id", id),
	)
	return mapToResponse(*empl), nil
}

// Delete is a soft delete: the employee flips to INACTIVE and stays
// queryable. Nothing is ever physically removed.
func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	cid := contextutil.GetCorrelationID(ctx)
	emplID, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, emplID)
		if err != nil {
			return err
		}

		empl.Status = StatusInactive
		return qtx.Update(ctx, empl)
	})
	if err != nil {
		s.logger.Error("delete employee failed",
			zap.String("correlation_id", cid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("correlation_id", cid),
		zap.String("employee_id", id),
	)
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
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

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

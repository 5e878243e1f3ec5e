package department

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	departmenterrors "github.com/shashitejag2k2/employee-management/internal/department/errors"
	"github.com/shashitejag2k2/employee-management/internal/shared/contextutil"
	"github.com/shashitejag2k2/employee-management/internal/shared/query"
	"github.com/shashitejag2k2/employee-management/internal/shared/response"
)

// sortableFields maps exposed sort field names to database columns.
var sortableFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	List(ctx context.Context, req ListDepartmentsRequest) ([]DepartmentResponse, response.PageMeta, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	cid := contextutil.GetCorrelationID(ctx)
	s.logger.Debug("create department requested",
		zap.String("correlation_id", cid),
		zap.String("name", req.Name),
	)

	var dept *Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.ExistsByName(ctx, req.Name)
		if err != nil {
			return err
		}
		if exists {
			return departmenterrors.ErrDepartmentNameAlreadyExists
		}

		dept = &Department{
			ID:          uuid.New(),
			Name:        req.Name,
			Description: req.Description,
		}
		return qtx.Create(ctx, dept)
	})
	if err != nil {
		s.logger.Error("create department failed", zap.String("correlation_id", cid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success",
		zap.String("correlation_id", cid),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(*dept), nil
}

func (s *service) List(
	ctx context.Context,
	req ListDepartmentsRequest,
) ([]DepartmentResponse, response.PageMeta, error) {
	s.logger.Debug("list departments requested",
		zap.Int("page", req.Page),
		zap.Int("size", req.Size),
		zap.String("sort", req.Sort),
	)

	sort, err := query.ParseSort(req.Sort, sortableFields)
	if err != nil {
		return nil, response.PageMeta{}, mapRepositoryError(err)
	}
	page := query.NormalizePage(req.Page, req.Size)

	depts, total, err := s.repo.FindPage(ctx, sort, page)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, response.PageMeta{}, mapRepositoryError(err)
	}

	meta := response.NewPageMeta(page.Number, page.Size, total)
	return mapToListResponse(depts), meta, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (DepartmentResponse, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, deptID)
	if err != nil {
		s.logger.Error("get department by id failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	cid := contextutil.GetCorrelationID(ctx)
	deptID, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	var dept *Department
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		dept, err = qtx.FindByID(ctx, deptID)
		if err != nil {
			return err
		}

		// Uniqueness check excludes the department's own id so an
		// unchanged name is not a conflict.
		exists, err := qtx.ExistsByNameExcluding(ctx, req.Name, deptID)
		if err != nil {
			return err
		}
		if exists {
			return departmenterrors.ErrDepartmentNameAlreadyExists
		}

		dept.Name = req.Name
		dept.Description = req.Description
		return qtx.Update(ctx, dept)
	})
	if err != nil {
		s.logger.Error("update department failed",
			zap.String("correlation_id", cid),
			zap.String("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update department success",
		zap.String("correlation_id", cid),
		zap.String("department_id", id),
	)
	return mapToResponse(*dept), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	cid := contextutil.GetCorrelationID(ctx)
	deptID, err := uuid.Parse(id)
	if err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// Departments are removed for real; only employees soft-delete.
		if _, err := qtx.FindByID(ctx, deptID); err != nil {
			return err
		}
		return qtx.Delete(ctx, deptID)
	})
	if err != nil {
		s.logger.Error("delete department failed",
			zap.String("correlation_id", cid),
			zap.String("department_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success",
		zap.String("correlation_id", cid),
		zap.String("department_id", id),
	)
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}

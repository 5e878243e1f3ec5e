package employee

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shashitejag2k2/employee-management/internal/shared/query"
)

// Filter holds the optional equality predicates for employee listing.
// A nil field contributes no constraint.
type Filter struct {
	DepartmentID *uuid.UUID
	Role         *string
	Status       *string
}

// Scopes folds the present filters into AND-composed predicates.
func (f Filter) Scopes() []query.Scope {
	return []query.Scope{
		query.EqUUID("department_id", f.DepartmentID),
		query.EqString("role", f.Role),
		query.EqString("status", f.Status),
	}
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindPage(ctx context.Context, filter Filter, sort *query.Sort, page query.Page) ([]Employee, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, email string, id uuid.UUID) (bool, error)
	Update(ctx context.Context, empl *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindPage(ctx context.Context, filter Filter, sort *query.Sort, page query.Page) ([]Employee, int64, error) {
	return query.Paginate[Employee](ctx, r.db, filter.Scopes(), sort, page)
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmailExcluding(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("LOWER(email) = LOWER(?)", email).
		Where("id <> ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

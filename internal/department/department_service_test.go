package department_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shashitejag2k2/employee-management/internal/department"
	departmenterrors "github.com/shashitejag2k2/employee-management/internal/department/errors"
	departmentMock "github.com/shashitejag2k2/employee-management/internal/department/mock"
	"github.com/shashitejag2k2/employee-management/internal/shared/query"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *departmentMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := departmentMock.NewMockRepository(ctrl)
	svc := department.NewService(gdb, repo, zap.NewNop())

	return &serviceDeps{
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(gomock.Any(), "Engineering").Return(false, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NotEmpty(t, resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("case-insensitive name conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(gomock.Any(), "engineering").Return(true, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "engineering"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns page metadata", func(t *testing.T) {
		deps := setupServiceTest(t)

		depts := []department.Department{
			{ID: uuid.New(), Name: "Engineering"},
			{ID: uuid.New(), Name: "Finance"},
		}
		deps.repo.EXPECT().
			FindPage(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sort *query.Sort, page query.Page) ([]department.Department, int64, error) {
				assert.Nil(t, sort)
				assert.Equal(t, 0, page.Number)
				assert.Equal(t, 20, page.Size)
				return depts, 45, nil
			})

		items, meta, err := deps.service.List(ctx, department.ListDepartmentsRequest{Page: 0, Size: 20})

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(45), meta.TotalElements)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("sort spec reaches the repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindPage(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sort *query.Sort, page query.Page) ([]department.Department, int64, error) {
				assert.Equal(t, "name", sort.Column)
				assert.Equal(t, "DESC", sort.Direction)
				return nil, 0, nil
			})

		_, _, err := deps.service.List(ctx, department.ListDepartmentsRequest{Page: 0, Size: 20, Sort: "name,desc"})
		assert.NoError(t, err)
	})

	t.Run("invalid sort field is a validation error", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, _, err := deps.service.List(ctx, department.ListDepartmentsRequest{Page: 0, Size: 20, Sort: "secret,asc"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping own name is not a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		existing := &department.Department{ID: id, Name: "Engineering"}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().ExistsByNameExcluding(gomock.Any(), "Engineering", id).Return(false, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: "Engineering"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("conflict with another department", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&department.Department{ID: id, Name: "Engineering"}, nil)
		deps.repo.EXPECT().ExistsByNameExcluding(gomock.Any(), "Finance", id).Return(true, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: "Finance"})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameAlreadyExists)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("hard delete after existence check", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&department.Department{ID: id, Name: "Engineering"}, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.sqlMock.ExpectCommit()

		err := deps.service.Delete(ctx, id.String())
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing department", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(ctx, id.String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

package department

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	departmenterrors "github.com/shashitejag2k2/employee-management/internal/department/errors"
	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
	"github.com/shashitejag2k2/employee-management/internal/shared/query"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var sortErr *query.InvalidSortFieldError
	if errors.As(err, &sortErr) {
		return apperror.New(apperror.CodeValidation, sortErr.Error(), http.StatusBadRequest)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505: unique_violation. Last line of defense when two
		// concurrent creates pass the existence check.
		if pgErr.Code == "23505" {
			return departmenterrors.ErrDepartmentNameAlreadyExists
		}
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.Wrap(err, apperror.CodeDatabaseError, "Database error", http.StatusInternalServerError)
}

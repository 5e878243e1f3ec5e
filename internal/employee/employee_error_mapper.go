package employee

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	employeeerrors "github.com/shashitejag2k2/employee-management/internal/employee/errors"
	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
	"github.com/shashitejag2k2/employee-management/internal/shared/query"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var sortErr *query.InvalidSortFieldError
	if errors.As(err, &sortErr) {
		return apperror.New(apperror.CodeValidation, sortErr.Error(), http.StatusBadRequest)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505: unique_violation on uq_employee_email. Two concurrent
		// registrations can both pass the existence check; this is the
		// storage layer's last word and maps to Conflict, not a crash.
		if pgErr.Code == "23505" {
			return employeeerrors.ErrEmployeeEmailAlreadyExists
		}
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.Wrap(err, apperror.CodeDatabaseError, "Database error", http.StatusInternalServerError)
}

package departmenterrors

import (
	"net/http"

	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with name already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeValidation,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)

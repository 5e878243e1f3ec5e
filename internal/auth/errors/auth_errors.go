package autherrors

import (
	"net/http"

	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is the single failure shape for both an
	// unknown email and a wrong password.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Employee with email already exists",
		http.StatusConflict,
	)
)

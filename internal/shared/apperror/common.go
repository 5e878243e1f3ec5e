package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrMalformedRequest = New(
		CodeMalformedRequest,
		"Malformed JSON request",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		CodeValidation,
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrDatabase = New(
		CodeDatabaseError,
		"Database error",
		http.StatusInternalServerError,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)

package apperror

const (
	// Client errors (4xx)
	CodeValidation       = "VALIDATION_ERROR"
	CodeMalformedRequest = "MALFORMED_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"

	// Server errors (5xx)
	CodeDatabaseError = "DATABASE_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

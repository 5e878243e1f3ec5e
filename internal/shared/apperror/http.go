package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the boundary-layer view of a service failure.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details []FieldError
}

// ToHTTP translates any service error into a status/code/message triple.
// Unknown errors collapse to a generic 500 so internal detail never
// reaches the client; the caller is expected to log the original error.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			// 5xx responses carry the generic message only.
			msg = messageForCode(appErr.Code)
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: msg,
			Details: appErr.Details,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}

func messageForCode(code string) string {
	switch code {
	case CodeDatabaseError:
		return ErrDatabase.Message
	default:
		return ErrInternal.Message
	}
}

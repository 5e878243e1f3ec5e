package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shashitejag2k2/employee-management/internal/shared/apperror"
	"github.com/shashitejag2k2/employee-management/internal/shared/contextutil"
)

// PageMeta is the derived pagination summary attached to every list response.
type PageMeta struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageMeta computes totalPages as ceil(total/size): (total + size - 1) / size.
func NewPageMeta(page, size int, total int64) PageMeta {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PageMeta{
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// PageResponse wraps a page of items plus its metadata.
type PageResponse struct {
	Items any      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Timestamp     time.Time             `json:"timestamp"`
	Status        int                   `json:"status"`
	Error         string                `json:"error"`
	Code          string                `json:"code"`
	Message       string                `json:"message"`
	Path          string                `json:"path"`
	CorrelationID string                `json:"correlationId,omitempty"`
	Details       []apperror.FieldError `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Page(c *gin.Context, items any, meta PageMeta) {
	c.JSON(http.StatusOK, PageResponse{Items: items, Meta: meta})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, code, message string, details []apperror.FieldError) {
	c.JSON(status, ErrorBody{
		Timestamp:     time.Now().UTC(),
		Status:        status,
		Error:         http.StatusText(status),
		Code:          code,
		Message:       message,
		Path:          c.Request.URL.Path,
		CorrelationID: contextutil.GetCorrelationID(c.Request.Context()),
		Details:       details,
	})
}

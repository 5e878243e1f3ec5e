package employee

import (
	"github.com/gin-gonic/gin"
)

// Employees are exposed under /staff, matching the public API contract.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	staff := r.Group("/staff")
	{
		staff.POST("", h.Create)
		staff.GET("", h.List)
		staff.GET("/:id", h.GetByID)
		staff.PUT("/:id", h.Update)
		staff.DELETE("/:id", h.Delete)
	}
}

package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, loginRateLimit gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", loginRateLimit, h.Login)
		authGroup.POST("/register", h.Register)
	}
}

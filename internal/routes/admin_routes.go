package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/handlers"
	"github.com/yellowboat/backoffice/internal/middleware"
	"github.com/yellowboat/backoffice/internal/models"
)

// registerAdminRoutes covers account administration.
func registerAdminRoutes(authed *gin.RouterGroup, h *handlers.AppHandlers) {
	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/users", h.Auth.Register)
		admin.GET("/users", h.Auth.ListUsers)
		admin.DELETE("/users/:id", h.Auth.DeleteUser)
	}
}

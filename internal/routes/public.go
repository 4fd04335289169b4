package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/handlers"
)

// registerPublicRoutes covers the unauthenticated surface: login and
// trainer self-registration.
func registerPublicRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
	}

	api.POST("/registrations", h.Registration.Register)
}

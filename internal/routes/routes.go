package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/handlers"
	"github.com/yellowboat/backoffice/internal/middleware"
	"github.com/yellowboat/backoffice/internal/repositories"
)

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	userRepo repositories.UserRepository,
	h *handlers.AppHandlers,
) {
	router.GET("/health", h.System.Health)

	// Scheduler hooks, guarded by the shared cron key instead of a user
	// token.
	cron := router.Group("/cron")
	cron.Use(middleware.RequireCronKey(cfg))
	{
		cron.POST("/send-training-reminders", h.System.SendTrainingReminders)
	}

	api := router.Group("/api/v1")

	registerPublicRoutes(api, h)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg, userRepo))
	{
		registerCommonRoutes(authed, h)
		registerStaffRoutes(authed, h)
		registerTrainerRoutes(authed, h)
		registerAdminRoutes(authed, h)
	}
}

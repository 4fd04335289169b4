package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/handlers"
	"github.com/yellowboat/backoffice/internal/middleware"
	"github.com/yellowboat/backoffice/internal/models"
)

// registerTrainerRoutes covers the trainer portal. Locations appear in
// the redacted public view here, without billing data.
func registerTrainerRoutes(authed *gin.RouterGroup, h *handlers.AppHandlers) {
	portal := authed.Group("/portal")
	portal.Use(middleware.RequireRoles(models.UserRoleTrainer))
	{
		portal.GET("/dashboard", h.TrainerPortal.Dashboard)
		portal.GET("/profile", h.TrainerPortal.Profile)
		portal.PUT("/profile", h.TrainerPortal.UpdateProfile)

		portal.GET("/trainings/open", h.TrainerPortal.OpenTrainings)
		portal.GET("/trainings", h.TrainerPortal.MyTrainings)
		portal.POST("/trainings/:id/apply", h.TrainerPortal.Apply)

		portal.GET("/applications", h.TrainerPortal.MyApplications)
		portal.DELETE("/applications/:id", h.TrainerPortal.Withdraw)

		portal.GET("/locations", h.Location.ListPublic)
		portal.GET("/locations/:id", h.Location.GetPublic)
	}
}

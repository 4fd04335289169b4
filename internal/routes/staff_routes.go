package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/handlers"
	"github.com/yellowboat/backoffice/internal/middleware"
	"github.com/yellowboat/backoffice/internal/models"
)

// registerStaffRoutes covers the back-office surface shared by admins
// and backoffice users.
func registerStaffRoutes(authed *gin.RouterGroup, h *handlers.AppHandlers) {
	staff := authed.Group("")
	staff.Use(middleware.RequireStaff())

	staff.GET("/search", h.Search.Search)

	// Brands are read-visible to staff, write-restricted to admins.
	brands := staff.Group("/brands")
	{
		brands.GET("", h.Brand.List)
		brands.GET("/:id", h.Brand.Get)

		brandAdmin := brands.Group("")
		brandAdmin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			brandAdmin.POST("", h.Brand.Create)
			brandAdmin.PUT("/:id", h.Brand.Update)
			brandAdmin.DELETE("/:id", h.Brand.Delete)
		}
	}

	customers := staff.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	trainers := staff.Group("/trainers")
	{
		trainers.GET("", h.Trainer.List)
		trainers.POST("", h.Trainer.Create)
		trainers.GET("/:id", h.Trainer.Get)
		trainers.PUT("/:id", h.Trainer.Update)
		trainers.DELETE("/:id", h.Trainer.Delete)
	}

	trainings := staff.Group("/trainings")
	{
		trainings.GET("", h.Training.List)
		trainings.POST("", h.Training.Create)
		trainings.GET("/:id", h.Training.Get)
		trainings.PUT("/:id", h.Training.Update)
		trainings.DELETE("/:id", h.Training.Delete)
		trainings.POST("/:id/status", h.Training.ChangeStatus)
		trainings.GET("/:id/activity", h.Training.ActivityLogs)
		trainings.POST("/:id/activity", h.Training.AppendActivityLog)
		trainings.GET("/:id/tasks", h.Training.ListTasks)
		trainings.POST("/:id/tasks", h.Training.CreateTask)
		trainings.GET("/:id/tasks/:taskId", h.Training.GetTask)
		trainings.PUT("/:id/tasks/:taskId", h.Training.UpdateTask)
		trainings.DELETE("/:id/tasks/:taskId", h.Training.DeleteTask)
	}

	applications := staff.Group("/applications")
	{
		applications.GET("", h.Application.List)
		applications.POST("/:id/accept", h.Application.Accept)
		applications.POST("/:id/reject", h.Application.Reject)
	}

	registrations := staff.Group("/registrations")
	{
		registrations.GET("", h.Registration.List)
		registrations.GET("/:id", h.Registration.Get)
		registrations.POST("/:id/approve", h.Registration.Approve)
		registrations.POST("/:id/reject", h.Registration.Reject)
	}

	locations := staff.Group("/locations")
	{
		locations.GET("", h.Location.List)
		locations.POST("", h.Location.Create)
		locations.GET("/:id", h.Location.Get)
		locations.PUT("/:id", h.Location.Update)
		locations.DELETE("/:id", h.Location.Delete)
	}

	catalog := staff.Group("/catalog")
	{
		catalog.POST("", h.Catalog.Create)
		catalog.PUT("/:id", h.Catalog.Update)
		catalog.DELETE("/:id", h.Catalog.Delete)
	}
}

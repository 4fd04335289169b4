package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/handlers"
)

// registerCommonRoutes covers what every authenticated role can reach:
// own profile, internal messages, the platform mailbox and the catalog.
func registerCommonRoutes(authed *gin.RouterGroup, h *handlers.AppHandlers) {
	auth := authed.Group("/auth")
	{
		auth.GET("/me", h.Auth.Me)
		auth.PUT("/me", h.Auth.UpdateMe)
		auth.POST("/logout", h.Auth.Logout)
	}

	authed.GET("/users/recipients", h.Auth.ListRecipients)

	messages := authed.Group("/messages")
	{
		messages.GET("", h.Message.List)
		messages.POST("", h.Message.Create)
		messages.GET("/unread-count", h.Message.UnreadCount)
		messages.GET("/:id", h.Message.Get)
		messages.PUT("/:id", h.Message.Update)
		messages.DELETE("/:id", h.Message.Delete)
	}

	mailbox := authed.Group("/mailbox")
	{
		mailbox.GET("/emails", h.Mailbox.ListFolder)
		mailbox.POST("/emails", h.Mailbox.Send)
		mailbox.GET("/unread-count", h.Mailbox.UnreadCount)
		mailbox.GET("/threads/:threadId", h.Mailbox.Thread)
		mailbox.GET("/emails/:id", h.Mailbox.Get)
		mailbox.PUT("/emails/:id", h.Mailbox.UpdateDraft)
		mailbox.DELETE("/emails/:id", h.Mailbox.Delete)
		mailbox.POST("/emails/:id/read", h.Mailbox.MarkRead)
		mailbox.POST("/emails/:id/unread", h.Mailbox.MarkUnread)
		mailbox.POST("/emails/:id/star", h.Mailbox.ToggleStar)
		mailbox.POST("/emails/:id/move", h.Mailbox.Move)
	}

	catalog := authed.Group("/catalog")
	{
		catalog.GET("", h.Catalog.List)
		catalog.GET("/:id", h.Catalog.Get)
	}
}

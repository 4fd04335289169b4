package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/workers"
)

// SystemHandler covers health checks and scheduler hooks.
type SystemHandler struct {
	*BaseHandler
	reminderWorker *workers.ReminderWorker
}

func NewSystemHandler(base *BaseHandler, reminderWorker *workers.ReminderWorker) *SystemHandler {
	return &SystemHandler{BaseHandler: base, reminderWorker: reminderWorker}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SendTrainingReminders runs the reminder batch on demand. Guarded by
// the cron key middleware.
func (h *SystemHandler) SendTrainingReminders(c *gin.Context) {
	sent, err := h.reminderWorker.RunOnce()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

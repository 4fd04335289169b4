package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

// MailboxHandler serves the platform email client for trainers with a
// provisioned address.
type MailboxHandler struct {
	*BaseHandler
	mailboxService *services.MailboxService
}

func NewMailboxHandler(base *BaseHandler, mailboxService *services.MailboxService) *MailboxHandler {
	return &MailboxHandler{BaseHandler: base, mailboxService: mailboxService}
}

func (h *MailboxHandler) ListFolder(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	folder := models.MailFolder(c.DefaultQuery("folder", string(models.MailFolderInbox)))
	if !models.ValidMailFolder(folder) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown folder: "+string(folder)))
		return
	}

	limit, offset := ParsePagination(c)
	emails, total, err := h.mailboxService.ListFolder(user, folder, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(emails, total, limit, offset))
}

func (h *MailboxHandler) Get(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	email, err := h.mailboxService.Get(user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

// Send composes an email; with save_as_draft it lands in drafts instead.
func (h *MailboxHandler) Send(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.SendEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	email, err := h.mailboxService.Send(user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, email)
}

func (h *MailboxHandler) UpdateDraft(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	email, err := h.mailboxService.UpdateDraft(user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *MailboxHandler) MarkRead(c *gin.Context) {
	h.setRead(c, true)
}

func (h *MailboxHandler) MarkUnread(c *gin.Context) {
	h.setRead(c, false)
}

func (h *MailboxHandler) setRead(c *gin.Context, read bool) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	email, err := h.mailboxService.MarkRead(user, c.Param("id"), read)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *MailboxHandler) ToggleStar(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	email, err := h.mailboxService.ToggleStar(user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *MailboxHandler) Move(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.MoveEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	email, err := h.mailboxService.Move(user, c.Param("id"), models.MailFolder(req.Folder))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

// Delete moves the email to trash, or removes it for good when it is
// already there.
func (h *MailboxHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	if err := h.mailboxService.Delete(user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MailboxHandler) UnreadCount(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	count, err := h.mailboxService.UnreadCount(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *MailboxHandler) Thread(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	emails, err := h.mailboxService.Thread(user, c.Param("threadId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, emails)
}

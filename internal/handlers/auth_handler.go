package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// Login authenticates by username and password, rate limited per client IP.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, user, err := h.authService.Login(c.ClientIP(), req.Username, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Register creates a new account (admin only, routed accordingly).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.RegisterUser(
		req.Username, req.Email, req.Password, req.Role, req.FirstName, req.LastName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.authService.UpdateProfile(user, req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Logout exists for client symmetry; tokens are stateless, so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	limit, offset := ParsePagination(c)

	users, total, err := h.authService.ListUsers(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, limit, offset))
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteUser(actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRecipients feeds the message recipient picker.
func (h *AuthHandler) ListRecipients(c *gin.Context) {
	users, err := h.authService.ListRecipients()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]dto.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserListItem{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      string(u.Role),
		})
	}
	c.JSON(http.StatusOK, items)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/auth"
	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/pkg/apperrors"
	"github.com/yellowboat/backoffice/pkg/contextkeys"
)

// AuthMiddleware validates the bearer token and loads the user row, so
// role changes and deactivations take effect on the next request, not at
// the next token refresh.
func AuthMiddleware(cfg *config.Config, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(cfg.JWT.Secret, tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		if !user.IsActive {
			apperrors.HandleError(c, apperrors.ErrAccountInactive)
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Set(contextkeys.CurrentUserKey, user)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects requests whose authenticated role is not listed.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireStaff shortcuts the admin + backoffice_user guard.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin, models.UserRoleBackoffice)
}

// CurrentUser extracts the loaded user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(contextkeys.CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// RequireCronKey guards scheduler endpoints with a shared secret header.
func RequireCronKey(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Cron.Key == "" || c.GetHeader("X-Cron-Key") != cfg.Cron.Key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid cron key"})
			return
		}
		c.Next()
	}
}

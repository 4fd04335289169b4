package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/auth"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

func (e *testEnv) createLoginUser(t *testing.T, username, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createLoginUser(t, "alice", "correct-pass", models.UserRoleBackoffice)

	token, user, err := env.auth.Login("10.0.0.1", "alice", "correct-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)

	claims, err := auth.ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "backoffice_user", claims.Role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createLoginUser(t, "alice", "correct-pass", models.UserRoleBackoffice)

	_, _, err := env.auth.Login("10.0.0.1", "alice", "wrong")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	// Unknown usernames answer identically.
	_, _, err = env.auth.Login("10.0.0.1", "nobody", "wrong")
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestAuthService_LoginLockout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createLoginUser(t, "alice", "correct-pass", models.UserRoleBackoffice)

	for i := 0; i < 3; i++ {
		_, _, err := env.auth.Login("10.0.0.9", "alice", "wrong")
		require.Error(t, err)
	}

	// Even the correct password is refused while locked out.
	_, _, err := env.auth.Login("10.0.0.9", "alice", "correct-pass")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeRateLimited, appErr.Code)
	assert.Contains(t, appErr.Details, "retry_after_seconds")

	// Another client is unaffected.
	_, _, err = env.auth.Login("10.0.0.10", "alice", "correct-pass")
	assert.NoError(t, err)
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.createLoginUser(t, "alice", "correct-pass", models.UserRoleBackoffice)
	user.IsActive = false
	require.NoError(t, env.db.Save(user).Error)

	_, _, err := env.auth.Login("10.0.0.1", "alice", "correct-pass")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestAuthService_LoginLinksTrainerProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.createLoginUser(t, "becker", "correct-pass", models.UserRoleTrainer)

	// An unlinked trainer profile with the same email exists.
	trainer := &models.Trainer{
		FirstName: "Jan",
		LastName:  "Becker",
		Email:     user.Email,
	}
	require.NoError(t, env.db.Create(trainer).Error)

	_, _, err := env.auth.Login("10.0.0.1", "becker", "correct-pass")
	require.NoError(t, err)

	linked, err := env.trainerRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, trainer.ID, linked.ID)
}

func TestAuthService_DeleteUserSelfGuard(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createStaffUser(t, "admin", models.UserRoleAdmin)
	victim := env.createStaffUser(t, "bob", models.UserRoleBackoffice)

	err := env.auth.DeleteUser(admin, admin.ID)
	assert.Error(t, err, "admins cannot delete their own account")

	require.NoError(t, env.auth.DeleteUser(admin, victim.ID))
	_, err = env.auth.GetUser(victim.ID)
	assert.Error(t, err)
}

func TestAuthService_DeleteUserKeepsTrainerProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createStaffUser(t, "admin", models.UserRoleAdmin)
	user, trainer := env.createTrainerAccount(t, "Weber")

	require.NoError(t, env.auth.DeleteUser(admin, user.ID))

	_, err := env.auth.GetUser(user.ID)
	assert.Error(t, err)

	kept, err := env.trainerRepo.FindByID(trainer.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.UserID, "profile keeps its data but loses the account link")
	assert.Equal(t, "Weber", kept.LastName)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

func registerRequest(email string) *dto.RegisterTrainerRequest {
	return &dto.RegisterTrainerRequest{
		Email:     email,
		Password:  "trainerpass1",
		FirstName: "Nina",
		LastName:  "Vogel",
		Region:    "South",
	}
}

func TestRegistrationService_Register(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createStaffUser(t, "admin", models.UserRoleAdmin)

	reg, err := env.registration.Register(registerRequest("Nina.Vogel@example.com"))
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusPending, reg.Status)
	assert.Equal(t, "nina.vogel@example.com", reg.Email, "email is stored lowercased")

	// Applicant confirmation plus staff notification.
	assert.Len(t, env.provider.sentTo("nina.vogel@example.com"), 1)
	assert.Len(t, env.provider.sentTo("admin@backoffice.example.com"), 1)

	// Same email cannot register twice.
	_, err = env.registration.Register(registerRequest("nina.vogel@example.com"))
	assert.Error(t, err)
}

func TestRegistrationService_ApproveCreatesAccountAndProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "admin", models.UserRoleAdmin)

	reg, err := env.registration.Register(registerRequest("nina.vogel@example.com"))
	require.NoError(t, err)

	approved, err := env.registration.Approve(actor, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusApproved, approved.Status)
	assert.Equal(t, "admin", approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)

	// Portal user exists with the registration password hash.
	user, err := env.userRepo.FindByEmail("nina.vogel@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleTrainer, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, reg.PasswordHash, user.PasswordHash)

	// Trainer profile is linked to the account.
	trainer, err := env.trainerRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vogel", trainer.LastName)
	assert.Equal(t, "South", trainer.Region)

	// Approval email went out.
	assert.Len(t, env.provider.sentTo("nina.vogel@example.com"), 2)
}

func TestRegistrationService_ApproveOnlyPending(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "admin", models.UserRoleAdmin)

	reg, err := env.registration.Register(registerRequest("nina.vogel@example.com"))
	require.NoError(t, err)

	_, err = env.registration.Approve(actor, reg.ID)
	require.NoError(t, err)

	_, err = env.registration.Approve(actor, reg.ID)
	assert.Error(t, err, "an approved registration cannot be approved again")
}

func TestRegistrationService_Reject(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "admin", models.UserRoleAdmin)

	reg, err := env.registration.Register(registerRequest("nina.vogel@example.com"))
	require.NoError(t, err)

	rejected, err := env.registration.Reject(actor, reg.ID, "No demand in this region")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusRejected, rejected.Status)

	// No portal account was created.
	_, err = env.userRepo.FindByEmail("nina.vogel@example.com")
	assert.Error(t, err)

	mails := env.provider.sentTo("nina.vogel@example.com")
	require.Len(t, mails, 2)
	assert.Contains(t, mails[1].Body, "No demand in this region")
}

func TestMailboxLocalPart(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Vogel":       "vogel",
		"Müller":      "mueller",
		"Groß":        "gross",
		"Schön-Öhler": "schoenoehler",
		"O'Brien":     "obrien",
		"van Dyk":     "vandyk",
		"123":         "123",
		"---":         "",
		"":            "",
	}

	for in, want := range cases {
		assert.Equal(t, want, mailboxLocalPart(in), "input %q", in)
	}
}

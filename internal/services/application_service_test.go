package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

func TestApplicationService_Apply(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createStaffUser(t, "admin", models.UserRoleAdmin)
	user, trainer := env.createTrainerAccount(t, "Becker")
	training := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)

	app, err := env.application.Apply(user.ID, training.ID, &dto.ApplyRequest{
		Message: "I have run this format before.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, trainer.ID, app.TrainerID)

	// Confirmation to the trainer plus a heads-up to the staff member.
	assert.Len(t, env.provider.sentTo(trainer.Email), 1)
	assert.Len(t, env.provider.sentTo("admin@backoffice.example.com"), 1)
}

func TestApplicationService_ApplyGuards(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")

	// Not in trainer_outreach.
	closed := env.createTraining(t, models.TrainingStatusPlanning, nil)
	_, err := env.application.Apply(user.ID, closed.ID, &dto.ApplyRequest{})
	assert.Error(t, err)

	// Already assigned.
	_, other := env.createTrainerAccount(t, "Lang")
	assigned := env.createTraining(t, models.TrainingStatusTrainerOutreach, &other.ID)
	_, err = env.application.Apply(user.ID, assigned.ID, &dto.ApplyRequest{})
	assert.Error(t, err)

	// Duplicate application.
	open := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)
	_, err = env.application.Apply(user.ID, open.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	_, err = env.application.Apply(user.ID, open.ID, &dto.ApplyRequest{})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestApplicationService_AcceptAssignsAndRejectsOthers(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	userA, trainerA := env.createTrainerAccount(t, "Becker")
	userB, trainerB := env.createTrainerAccount(t, "Lang")
	training := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)

	appA, err := env.application.Apply(userA.ID, training.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	appB, err := env.application.Apply(userB.ID, training.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	accepted, err := env.application.Accept(actor, appA.ID, "best fit")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Status)
	assert.Equal(t, "best fit", accepted.AdminNotes)

	// Trainer A is now assigned to the training.
	current, err := env.training.Get(training.ID)
	require.NoError(t, err)
	require.NotNil(t, current.TrainerID)
	assert.Equal(t, trainerA.ID, *current.TrainerID)

	// Trainer B's application flipped to rejected, with a notification.
	var stored models.TrainerApplication
	require.NoError(t, env.db.First(&stored, "id = ?", appB.ID).Error)
	assert.Equal(t, models.ApplicationStatusRejected, stored.Status)
	assert.NotEmpty(t, env.provider.sentTo(trainerB.Email))
}

func TestApplicationService_AcceptTwiceFails(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	userA, _ := env.createTrainerAccount(t, "Becker")
	userB, _ := env.createTrainerAccount(t, "Lang")
	training := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)

	appA, err := env.application.Apply(userA.ID, training.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	appB, err := env.application.Apply(userB.ID, training.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = env.application.Accept(actor, appA.ID, "")
	require.NoError(t, err)

	_, err = env.application.Accept(actor, appB.ID, "")
	assert.Error(t, err, "a decided training cannot be accepted again")
}

func TestApplicationService_Withdraw(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")
	other, _ := env.createTrainerAccount(t, "Lang")
	training := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)

	app, err := env.application.Apply(user.ID, training.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Someone else cannot withdraw it.
	err = env.application.Withdraw(other.ID, app.ID)
	assert.Error(t, err)

	require.NoError(t, env.application.Withdraw(user.ID, app.ID))

	apps, err := env.application.MyApplications(user.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplicationService_OpenTrainings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	open := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)
	env.createTraining(t, models.TrainingStatusLead, nil)
	_, trainer := env.createTrainerAccount(t, "Lang")
	env.createTraining(t, models.TrainingStatusTrainerOutreach, &trainer.ID)

	trainings, err := env.application.OpenTrainings()
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, open.ID, trainings[0].ID)
}

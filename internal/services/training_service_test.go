package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

func TestTrainingService_CreateWithChecklist(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	brand := env.createBrand(t, "leadership")
	customer := env.createCustomer(t, "Acme GmbH")

	start := time.Now().AddDate(0, 2, 0)
	training, err := env.training.Create(actor, &dto.CreateTrainingRequest{
		Title:             "Feedback Culture",
		TrainingType:      "online",
		TrainingFormat:    "inhouse",
		BrandID:           brand.ID,
		CustomerID:        customer.ID,
		StartDate:         &start,
		GenerateChecklist: true,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TrainingStatusLead, training.Status)

	tasks, err := env.training.TasksByTraining(training.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Create Teams meeting", tasks[0].Title)

	logs, err := env.training.ActivityLogs(training.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "created")
}

func TestTrainingService_CreateExplicitTasksWinOverChecklist(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	brand := env.createBrand(t, "sales")
	customer := env.createCustomer(t, "Acme GmbH")

	training, err := env.training.Create(actor, &dto.CreateTrainingRequest{
		Title:             "Negotiation",
		TrainingType:      "classroom",
		TrainingFormat:    "public",
		BrandID:           brand.ID,
		CustomerID:        customer.ID,
		GenerateChecklist: true,
		Tasks: []dto.CreateTaskRequest{
			{Title: "Book hotel"},
		},
	})
	require.NoError(t, err)

	tasks, err := env.training.TasksByTraining(training.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Book hotel", tasks[0].Title)
}

func TestTrainingService_CreateRejectsUnknownReferences(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	brand := env.createBrand(t, "ops")
	customer := env.createCustomer(t, "Acme GmbH")

	_, err := env.training.Create(actor, &dto.CreateTrainingRequest{
		Title:          "X",
		TrainingType:   "online",
		TrainingFormat: "inhouse",
		BrandID:        "missing",
		CustomerID:     customer.ID,
	})
	assert.Error(t, err)

	_, err = env.training.Create(actor, &dto.CreateTrainingRequest{
		Title:          "X",
		TrainingType:   "webinar",
		TrainingFormat: "inhouse",
		BrandID:        brand.ID,
		CustomerID:     customer.ID,
	})
	assert.Error(t, err, "unknown training type must be rejected")
}

func TestTrainingService_ChangeStatusValid(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	training := env.createTraining(t, models.TrainingStatusLead, nil)

	updated, err := env.training.ChangeStatus(actor, training.ID, models.TrainingStatusProposalSent)
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStatusProposalSent, updated.Status)

	logs, err := env.training.ActivityLogs(training.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, `"lead"`)
	assert.Contains(t, logs[0].Message, `"proposal_sent"`)
}

func TestTrainingService_ChangeStatusInvalid(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	training := env.createTraining(t, models.TrainingStatusLead, nil)

	_, err := env.training.ChangeStatus(actor, training.ID, models.TrainingStatusInvoiced)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)

	// The training is untouched and nothing was logged.
	current, err := env.training.Get(training.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStatusLead, current.Status)

	logs, err := env.training.ActivityLogs(training.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestTrainingService_ChangeStatusNoopIsNotLogged(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	training := env.createTraining(t, models.TrainingStatusPlanning, nil)

	updated, err := env.training.ChangeStatus(actor, training.ID, models.TrainingStatusPlanning)
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStatusPlanning, updated.Status)

	logs, err := env.training.ActivityLogs(training.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestTrainingService_ChangeStatusNotifiesTrainer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	_, trainer := env.createTrainerAccount(t, "Meyer")
	training := env.createTraining(t, models.TrainingStatusPlanning, &trainer.ID)

	_, err := env.training.ChangeStatus(actor, training.ID, models.TrainingStatusDelivered)
	require.NoError(t, err)

	mails := env.provider.sentTo(trainer.Email)
	require.Len(t, mails, 1)
	assert.Contains(t, mails[0].Body, "delivered")
}

func TestTrainingService_UpdateAssignTrainerLogsAndNotifies(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	_, trainer := env.createTrainerAccount(t, "Schulz")
	training := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)

	updated, err := env.training.Update(actor, training.ID, &dto.UpdateTrainingRequest{
		TrainerID: &trainer.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.TrainerID)
	assert.Equal(t, trainer.ID, *updated.TrainerID)

	logs, err := env.training.ActivityLogs(training.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "Schulz")

	assert.Len(t, env.provider.sentTo(trainer.Email), 1)
}

// failingUpdateTrainingRepo rejects every write so error paths can be
// observed from the outside.
type failingUpdateTrainingRepo struct {
	repositories.TrainingRepository
}

func (r *failingUpdateTrainingRepo) Update(*models.Training) error {
	return errors.New("write failed")
}

func TestTrainingService_UpdateAssignTrainerNothingOnWriteError(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	_, trainer := env.createTrainerAccount(t, "Schulz")
	training := env.createTraining(t, models.TrainingStatusTrainerOutreach, nil)

	svc := NewTrainingService(
		&failingUpdateTrainingRepo{env.trainingRepo},
		env.trainerRepo,
		repositories.NewBrandRepository(env.db),
		repositories.NewCustomerRepository(env.db),
		env.notification,
	)

	_, err := svc.Update(actor, training.ID, &dto.UpdateTrainingRequest{
		TrainerID: &trainer.ID,
	})
	require.Error(t, err)

	logs, err := env.training.ActivityLogs(training.ID)
	require.NoError(t, err)
	assert.Empty(t, logs, "failed assignment must not be logged")
	assert.Zero(t, env.provider.count(), "failed assignment must not notify")
}

func TestTrainingService_DeleteRemovesTasksAndLogs(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	actor := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	training := env.createTraining(t, models.TrainingStatusPlanning, nil)

	for _, title := range []string{"Book room", "Order catering"} {
		_, err := env.training.CreateTask(&dto.CreateTaskRequest{
			TrainingID: training.ID,
			Title:      title,
		})
		require.NoError(t, err)
	}
	_, err := env.training.AppendActivityLog(actor, training.ID, "Kickoff call done")
	require.NoError(t, err)

	require.NoError(t, env.training.Delete(training.ID))

	_, err = env.training.Get(training.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	var tasks, logs int64
	require.NoError(t, env.db.Model(&models.TrainingTask{}).
		Where("training_id = ?", training.ID).Count(&tasks).Error)
	require.NoError(t, env.db.Model(&models.ActivityLog{}).
		Where("training_id = ?", training.ID).Count(&logs).Error)
	assert.Zero(t, tasks)
	assert.Zero(t, logs)
}

func TestTrainingService_TaskStatusTracksCompletion(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	training := env.createTraining(t, models.TrainingStatusPlanning, nil)

	task, err := env.training.CreateTask(&dto.CreateTaskRequest{
		TrainingID: training.ID,
		Title:      "Print handouts",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusOpen, task.Status)
	assert.Nil(t, task.CompletedAt)

	done := "done"
	task, err = env.training.UpdateTask(task.ID, &dto.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, task.Status)
	require.NotNil(t, task.CompletedAt)

	open := "open"
	task, err = env.training.UpdateTask(task.ID, &dto.UpdateTaskRequest{Status: &open})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusOpen, task.Status)
	assert.Nil(t, task.CompletedAt)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/models"
)

func TestGenerateTasks_Online(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	training := &models.Training{
		TrainingType: models.TrainingTypeOnline,
		StartDate:    &start,
	}
	training.ID = "training-1"

	tasks := GenerateTasks(training)
	require.Len(t, tasks, 3)

	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)

		assert.Equal(t, "training-1", task.TrainingID)
		assert.True(t, task.IsRequired)
		assert.Equal(t, models.TaskStatusOpen, task.Status)
		assert.Equal(t, "Backoffice", task.Assignee)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, start.AddDate(0, 0, -7), *task.DueDate)
	}

	assert.Equal(t, []string{
		"Create Teams meeting",
		"Insert meeting link",
		"Send participant invitations",
	}, titles)
}

func TestGenerateTasks_Classroom(t *testing.T) {
	t.Parallel()

	training := &models.Training{TrainingType: models.TrainingTypeClassroom}

	tasks := GenerateTasks(training)
	require.Len(t, tasks, 3)

	assert.Equal(t, "Confirm location booking", tasks[0].Title)
	assert.Equal(t, "Order catering", tasks[1].Title)
	assert.Equal(t, "Send directions and parking information", tasks[2].Title)
}

func TestGenerateTasks_NoStartDate(t *testing.T) {
	t.Parallel()

	tasks := GenerateTasks(&models.Training{TrainingType: models.TrainingTypeOnline})
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Nil(t, task.DueDate, "tasks without a start date have no due date")
	}
}

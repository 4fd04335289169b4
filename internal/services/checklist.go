package services

import (
	"time"

	"github.com/yellowboat/backoffice/internal/models"
)

// Default preparation tasks per training type.
var (
	onlineDefaultTasks = []string{
		"Create Teams meeting",
		"Insert meeting link",
		"Send participant invitations",
	}
	classroomDefaultTasks = []string{
		"Confirm location booking",
		"Order catering",
		"Send directions and parking information",
	}
)

const checklistAssignee = "Backoffice"

// checklistDueOffset is subtracted from the training start date.
const checklistDueOffset = 7 * 24 * time.Hour

// GenerateTasks builds the default checklist for a training. Each task is
// open, required, assigned to the back office, and due one week before
// the start date when one is set.
func GenerateTasks(training *models.Training) []models.TrainingTask {
	titles := classroomDefaultTasks
	if training.TrainingType == models.TrainingTypeOnline {
		titles = onlineDefaultTasks
	}

	var dueDate *time.Time
	if training.StartDate != nil {
		due := training.StartDate.Add(-checklistDueOffset)
		dueDate = &due
	}

	tasks := make([]models.TrainingTask, 0, len(titles))
	for _, title := range titles {
		tasks = append(tasks, models.TrainingTask{
			TrainingID: training.ID,
			Title:      title,
			IsRequired: true,
			Status:     models.TaskStatusOpen,
			DueDate:    dueDate,
			Assignee:   checklistAssignee,
		})
	}
	return tasks
}

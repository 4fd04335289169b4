package workers

import (
	"context"
	"time"

	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services"
)

// ReminderWorker sends day-before reminders to trainers for upcoming
// trainings. It runs as a daily background loop and can also be driven
// by the cron endpoint when the process is deployed without long-lived
// workers.
type ReminderWorker struct {
	trainingRepo repositories.TrainingRepository
	notification *services.NotificationService

	interval time.Duration
	now      func() time.Time
}

func NewReminderWorker(trainingRepo repositories.TrainingRepository, notification *services.NotificationService) *ReminderWorker {
	return &ReminderWorker{
		trainingRepo: trainingRepo,
		notification: notification,
		interval:     24 * time.Hour,
		now:          time.Now,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *ReminderWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			n, err := w.RunOnce()
			logger.WorkerLog("reminder", "daily reminder batch", err)
			if err == nil && n > 0 {
				logger.Info("Training reminders sent", "count", n)
			}
		}
	}
}

// RunOnce sends reminders for trainings starting tomorrow (UTC) and
// returns how many were sent.
func (w *ReminderWorker) RunOnce() (int, error) {
	today := w.now().UTC().Truncate(24 * time.Hour)
	dayStart := today.Add(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	trainings, err := w.trainingRepo.FindUpcomingForReminder(dayStart, dayEnd)
	if err != nil {
		return 0, err
	}

	for i := range trainings {
		w.notification.SendTrainingReminder(&trainings[i])
	}
	return len(trainings), nil
}

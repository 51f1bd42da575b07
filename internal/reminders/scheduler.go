package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/ayursutra/platform/internal/clinic"
	"github.com/ayursutra/platform/pkg/logging"
)

// Scheduler derives reminder tasks from the therapy schedule.
type Scheduler struct {
	store  *Store
	logger *logging.Logger
}

// NewScheduler creates a reminder scheduler.
func NewScheduler(store *Store, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{store: store, logger: logger}
}

// ScheduleForSession creates the reminder pair for an upcoming therapy
// session: a preparation reminder for the patient and a treatment reminder
// for the practitioner, both due leadTime before the slot.
func (s *Scheduler) ScheduleForSession(ctx context.Context, sess clinic.TherapySession, leadTime time.Duration) ([]Task, error) {
	due := sess.ScheduledAt.Add(-leadTime)

	patientTask, err := s.store.Create(ctx, Task{
		Role:      "patient",
		Title:     fmt.Sprintf("Prepare for your %s session", sess.Therapy),
		Details:   "Eat light, stay hydrated and arrive 15 minutes early.",
		SessionID: sess.ID,
		DueAt:     due,
	})
	if err != nil {
		return nil, fmt.Errorf("reminders: schedule patient task: %w", err)
	}

	practTask, err := s.store.Create(ctx, Task{
		Role:      "practitioner",
		Title:     fmt.Sprintf("Upcoming %s session", sess.Therapy),
		Details:   "Review the patient's plan and prepare the treatment room.",
		SessionID: sess.ID,
		DueAt:     due,
	})
	if err != nil {
		return nil, fmt.Errorf("reminders: schedule practitioner task: %w", err)
	}

	s.logger.Info("reminders scheduled for session",
		"session_id", sess.ID, "therapy", sess.Therapy, "due_at", due.Format(time.RFC3339))

	return []Task{patientTask, practTask}, nil
}

// ScheduleUpcoming creates reminders for every upcoming scheduled session.
func (s *Scheduler) ScheduleUpcoming(ctx context.Context, sessions []clinic.TherapySession, leadTime time.Duration) (int, error) {
	created := 0
	for _, sess := range sessions {
		if sess.Status != clinic.SessionScheduled {
			continue
		}
		tasks, err := s.ScheduleForSession(ctx, sess, leadTime)
		if err != nil {
			return created, err
		}
		created += len(tasks)
	}
	return created, nil
}

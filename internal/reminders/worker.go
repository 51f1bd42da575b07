package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/ayursutra/platform/internal/observability/metrics"
	"github.com/ayursutra/platform/pkg/logging"
)

// Notifier delivers a due reminder to its audience.
type Notifier interface {
	Notify(ctx context.Context, task Task) error
}

// LogNotifier writes reminders to the application log. The product has no
// outbound messaging channel; the notification surface is the in-app tasks
// screen plus this log.
type LogNotifier struct {
	logger *logging.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the reminder.
func (n *LogNotifier) Notify(_ context.Context, task Task) error {
	n.logger.Info("reminder due",
		"task_id", task.ID, "role", task.Role, "title", task.Title)
	return nil
}

// Worker dispatches due reminder tasks on a polling loop.
type Worker struct {
	store    *Store
	notifier Notifier
	logger   *logging.Logger
	metrics  *metrics.ReminderMetrics
}

// NewWorker creates a reminder worker.
func NewWorker(store *Store, notifier Notifier, logger *logging.Logger, m *metrics.ReminderMetrics) *Worker {
	if logger == nil {
		logger = logging.Default()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &Worker{store: store, notifier: notifier, logger: logger, metrics: m}
}

// ProcessDue notifies and marks every pending task whose due time has
// passed. Returns the number of tasks dispatched.
func (w *Worker) ProcessDue(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	due, err := w.store.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("reminders worker: list due: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	processed := 0
	for _, task := range due {
		if err := w.notifier.Notify(ctx, task); err != nil {
			w.logger.Error("reminders worker: notify failed", "task_id", task.ID, "error", err)
			continue
		}
		if err := w.store.MarkSent(ctx, task.ID); err != nil {
			w.logger.Error("reminders worker: mark sent failed", "task_id", task.ID, "error", err)
			continue
		}
		w.metrics.ObserveDispatched(task.Role)
		processed++
	}

	return processed, nil
}

// Run polls for due tasks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("reminders worker started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminders worker stopped")
			return
		case <-ticker.C:
			if _, err := w.ProcessDue(ctx); err != nil {
				w.logger.Error("reminders worker: process due", "error", err)
			}
		}
	}
}

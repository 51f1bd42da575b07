package reminders

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus tracks the lifecycle of a reminder task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusSent      TaskStatus = "sent"
	StatusDone      TaskStatus = "done"
	StatusDismissed TaskStatus = "dismissed"
)

// Task is one reminder shown on the tasks screen: session preparation for
// patients, upcoming treatments for practitioners.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Role        string     `json:"role"` // audience: patient or practitioner
	Title       string     `json:"title"`
	Details     string     `json:"details,omitempty"`
	SessionID   uuid.UUID  `json:"session_id,omitempty"`
	DueAt       time.Time  `json:"due_at"`
	Status      TaskStatus `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

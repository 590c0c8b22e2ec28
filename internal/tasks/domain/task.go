package domain

import "time"

// TaskStatus is the task lifecycle state.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Toggled returns the status after a toggle. The rule is a two-state flip:
// COMPLETED goes back to PENDING, everything else (including IN_PROGRESS)
// jumps to COMPLETED. IN_PROGRESS intentionally skips straight to COMPLETED.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task is a task record owned by exactly one user. UserID is immutable after
// creation and every read or write is scoped by it.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

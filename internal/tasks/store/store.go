package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. Every operation is a single atomic row access; there is no
// transaction surface because nothing in this service needs multi-row
// atomicity (concurrent read-then-write updates are last-write-wins).
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail looks a user up by exact, case-sensitive email match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

// TaskFilter narrows a task listing. UserID is mandatory: no query ever runs
// unscoped. Status is an exact, case-sensitive match; Search is a
// case-insensitive substring match on the title.
type TaskFilter struct {
	UserID string
	Status domain.TaskStatus // zero value means no status filter
	Search string            // empty means no title filter
	Limit  int
	Offset int
}

type Tasks interface {
	// CreateTask inserts a new task row.
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTask returns the task matching both id and owner. A task owned by
	// someone else is ErrNotFound, indistinguishable from absence.
	GetTask(ctx context.Context, userID, taskID string) (domain.Task, error)

	// ListTasks returns the filtered page ordered by creation time
	// descending (newest first).
	ListTasks(ctx context.Context, f TaskFilter) ([]domain.Task, error)

	// CountTasks returns the total row count for the same filter, ignoring
	// Limit and Offset.
	CountTasks(ctx context.Context, f TaskFilter) (int64, error)

	// UpdateTask writes title, description, and status of the row matching
	// both t.ID and t.UserID. ErrNotFound when no row matches.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes the row matching both id and owner. ErrNotFound
	// when no row matches; deletion is never silently idempotent.
	DeleteTask(ctx context.Context, userID, taskID string) error
}

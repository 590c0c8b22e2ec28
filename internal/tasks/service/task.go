package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store"
	"github.com/aussiebroadwan/taskdeck/pkg/idx"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ErrNotFound reports a task that does not exist for this user. A task owned
// by someone else produces the same error, so existence never leaks across
// users.
var ErrNotFound = errors.New("task_not_found")

// TaskService exposes the ownership-scoped task operations. The
// authenticated user id is an explicit parameter on every call; a
// client-supplied owner id is never trusted.
type TaskService struct {
	Store store.Store
}

// ListParams narrows and pages a task listing.
type ListParams struct {
	Page   int
	Limit  int
	Status domain.TaskStatus // zero value means no filter
	Search string            // empty means no filter
}

// TaskPage is one page of a listing plus pagination metadata.
type TaskPage struct {
	Tasks      []domain.Task `json:"tasks"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int64         `json:"totalPages"`
}

// List returns the user's tasks, newest first, optionally filtered by exact
// status and case-insensitive title substring.
func (s *TaskService) List(ctx context.Context, userID string, p ListParams) (TaskPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Status != "" && !p.Status.Valid() {
		return TaskPage{}, ErrValidation
	}

	filter := store.TaskFilter{
		UserID: userID,
		Status: p.Status,
		Search: p.Search,
		Limit:  p.Limit,
		Offset: (p.Page - 1) * p.Limit,
	}

	tasks, err := s.Store.Tasks().ListTasks(ctx, filter)
	if err != nil {
		return TaskPage{}, err
	}

	total, err := s.Store.Tasks().CountTasks(ctx, filter)
	if err != nil {
		return TaskPage{}, err
	}

	limit := int64(p.Limit)
	return TaskPage{
		Tasks:      tasks,
		Total:      total,
		Page:       p.Page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// CreateTaskParams are the client-settable fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      domain.TaskStatus // empty defaults to PENDING
}

// Create inserts a task owned by userID. The owner is forced from the
// authenticated identity regardless of anything in the request body.
func (s *TaskService) Create(ctx context.Context, userID string, p CreateTaskParams) (domain.Task, error) {
	if strings.TrimSpace(p.Title) == "" {
		return domain.Task{}, ErrValidation
	}
	if p.Status == "" {
		p.Status = domain.StatusPending
	}
	if !p.Status.Valid() {
		return domain.Task{}, ErrValidation
	}

	task := domain.Task{
		ID:          idx.New().String(),
		UserID:      userID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Get returns the task matching both id and owner.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, mapStoreNotFound(err)
	}
	return task, nil
}

// UpdateTaskParams carries the partial update; nil fields are untouched.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// Update applies only the provided fields to the user's task. Concurrent
// updates are last-write-wins; there is no optimistic concurrency token.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, p UpdateTaskParams) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, mapStoreNotFound(err)
	}

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return domain.Task{}, ErrValidation
		}
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return domain.Task{}, ErrValidation
		}
		task.Status = *p.Status
	}

	if err := s.Store.Tasks().UpdateTask(ctx, task); err != nil {
		return domain.Task{}, mapStoreNotFound(err)
	}
	return task, nil
}

// Delete removes the user's task. A second delete of the same id reports
// ErrNotFound rather than silently succeeding.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.Store.Tasks().DeleteTask(ctx, userID, taskID); err != nil {
		return mapStoreNotFound(err)
	}
	return nil
}

// Toggle flips the task's status between COMPLETED and not-COMPLETED.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, mapStoreNotFound(err)
	}

	task.Status = task.Status.Toggled()

	if err := s.Store.Tasks().UpdateTask(ctx, task); err != nil {
		return domain.Task{}, mapStoreNotFound(err)
	}
	return task, nil
}

func mapStoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

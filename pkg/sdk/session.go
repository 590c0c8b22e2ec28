package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Session carries a token pair and exposes the authenticated task
// operations. It is not safe for concurrent use while refreshing.
type Session struct {
	client *Client
	tokens TokenPair
}

// Tokens returns the session's current token pair.
func (s *Session) Tokens() TokenPair {
	return s.tokens
}

// Refresh rotates the session's token pair using its refresh token.
func (s *Session) Refresh(ctx context.Context) error {
	pair, err := s.client.Refresh(ctx, s.tokens.RefreshToken)
	if err != nil {
		return err
	}
	s.tokens = pair
	return nil
}

// ListTasks fetches one page of the caller's tasks.
func (s *Session) ListTasks(ctx context.Context, params ListTasksParams) (TaskPage, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	path := "/tasks"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page TaskPage
	err := s.client.doJSON(ctx, http.MethodGet, path, s.tokens.AccessToken, nil, &page)
	return page, err
}

// CreateTask creates a task owned by the caller.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodPost, "/tasks", s.tokens.AccessToken, req, &task)
	return task, err
}

// GetTask fetches a single task by id.
func (s *Session) GetTask(ctx context.Context, id string) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), s.tokens.AccessToken, nil, &task)
	return task, err
}

// UpdateTask applies a partial update to a task.
func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), s.tokens.AccessToken, req, &task)
	return task, err
}

// DeleteTask removes a task.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), s.tokens.AccessToken, nil, nil)
}

// ToggleTask flips a task between completed and pending.
func (s *Session) ToggleTask(ctx context.Context, id string) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%s/toggle", url.PathEscape(id)), s.tokens.AccessToken, nil, &task)
	return task, err
}

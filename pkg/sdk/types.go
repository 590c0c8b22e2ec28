package sdk

import "time"

// TokenPair mirrors the auth endpoints' response body.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Task mirrors the task resource as the API serializes it.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks      []Task `json:"tasks"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int64  `json:"totalPages"`
}

// CreateTaskRequest is the body for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UpdateTaskRequest is a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ListTasksParams narrows a listing. Zero values are omitted from the query.
type ListTasksParams struct {
	Page   int
	Limit  int
	Status string
	Search string
}

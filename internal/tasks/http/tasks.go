package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
	"github.com/aussiebroadwan/taskdeck/pkg/idx"
	"github.com/aussiebroadwan/taskdeck/pkg/slogx"
)

// TasksHandler serves the /tasks routes. All of them sit behind the access
// guard, so the owning user id always comes from the request context, never
// from the client.
type TasksHandler struct {
	TaskService *service.TaskService
}

type createTaskRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
}

type updateTaskRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *domain.TaskStatus `json:"status"`
}

// HandleList godoc
//
//	@Summary		List tasks
//	@Description	Returns the caller's tasks, newest first, with pagination
//	@Description	metadata. Supports exact status filtering and
//	@Description	case-insensitive title search.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int		false	"page number (default 1)"
//	@Param			limit	query		int		false	"page size (default 10, max 100)"
//	@Param			status	query		string	false	"exact status filter"	Enums(PENDING, IN_PROGRESS, COMPLETED)
//	@Param			search	query		string	false	"title substring, case-insensitive"
//	@Success		200		{object}	service.TaskPage
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	params := service.ListParams{
		Status: domain.TaskStatus(q.Get("status")),
		Search: q.Get("search"),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = v
	}

	page, err := h.TaskService.List(ctx, httpx.UserIDFromContext(ctx), params)
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleCreate godoc
//
//	@Summary		Create task
//	@Description	Creates a task owned by the caller. Status defaults to
//	@Description	PENDING. The owner is always the authenticated user.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		createTaskRequest	true	"title required; description and status optional"
//	@Success		201		{object}	domain.Task
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Router			/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	task, err := h.TaskService.Create(ctx, httpx.UserIDFromContext(ctx), service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, task)
}

// HandleGet godoc
//
//	@Summary	Get task
//	@Tags		Tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"task id"
//	@Success	200	{object}	domain.Task
//	@Failure	401	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse	"missing or owned by someone else"
//	@Router		/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := taskIDFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.TaskService.Get(ctx, httpx.UserIDFromContext(ctx), taskID)
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, task)
}

// HandleUpdate godoc
//
//	@Summary		Update task
//	@Description	Partial update: only fields present in the body change.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"task id"
//	@Param			body	body		updateTaskRequest	true	"any of title, description, status"
//	@Success		200		{object}	domain.Task
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := taskIDFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Task not found")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	task, err := h.TaskService.Update(ctx, httpx.UserIDFromContext(ctx), taskID, service.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, task)
}

// HandleDelete godoc
//
//	@Summary	Delete task
//	@Tags		Tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"task id"
//	@Success	200	{object}	httpx.MessageResponse
//	@Failure	401	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := taskIDFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.TaskService.Delete(ctx, httpx.UserIDFromContext(ctx), taskID); err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Task deleted"})
}

// HandleToggle godoc
//
//	@Summary		Toggle task status
//	@Description	Two-state flip: COMPLETED becomes PENDING, anything else
//	@Description	(including IN_PROGRESS) becomes COMPLETED.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"task id"
//	@Success		200	{object}	domain.Task
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/tasks/{id}/toggle [patch].
func (h *TasksHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := taskIDFromPath(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.TaskService.Toggle(ctx, httpx.UserIDFromContext(ctx), taskID)
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, task)
}

// taskIDFromPath reads and validates the {id} path segment. An id that is
// not a well-formed ULID cannot match any row, so it reports not-ok and the
// caller responds 404.
func taskIDFromPath(r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (h *TasksHandler) writeTaskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Task not found")
	default:
		slogx.FromContext(r.Context()).Error("task operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
	}
}

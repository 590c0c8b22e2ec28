package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestTaskService(t *testing.T) (*TaskService, *AuthService) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	auth := &AuthService{Store: st, Tokens: newTestTokenService()}
	return &TaskService{Store: st}, auth
}

func registerUser(t *testing.T, auth *AuthService, email string) string {
	t.Helper()

	pair, err := auth.Register(context.Background(), email, "password123")
	require.NoError(t, err)

	userID, err := auth.Tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	return userID
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	svc, auth := newTestTaskService(t)
	userID := registerUser(t, auth, "demo@example.com")

	t.Run("defaults to pending", func(t *testing.T) {
		task, err := svc.Create(ctx, userID, CreateTaskParams{Title: "Buy milk"})
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, task.Status)
		require.Equal(t, userID, task.UserID)
		require.NotEmpty(t, task.ID)
		require.False(t, task.CreatedAt.IsZero())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		for _, title := range []string{"", "   "} {
			_, err := svc.Create(ctx, userID, CreateTaskParams{Title: title})
			require.ErrorIs(t, err, ErrValidation, "title %q", title)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, CreateTaskParams{Title: "x", Status: "DONE"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestTaskOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc, auth := newTestTaskService(t)
	alice := registerUser(t, auth, "alice@example.com")
	bob := registerUser(t, auth, "bob@example.com")

	task, err := svc.Create(ctx, alice, CreateTaskParams{Title: "Alice's task"})
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		page, err := svc.List(ctx, bob, ListParams{})
		require.NoError(t, err)
		require.Empty(t, page.Tasks)
		require.Zero(t, page.Total)
	})

	t.Run("get", func(t *testing.T) {
		_, err := svc.Get(ctx, bob, task.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		title := "stolen"
		_, err := svc.Update(ctx, bob, task.ID, UpdateTaskParams{Title: &title})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, bob, task.ID), ErrNotFound)
	})

	t.Run("toggle", func(t *testing.T) {
		_, err := svc.Toggle(ctx, bob, task.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	// Alice is unaffected by any of it.
	got, err := svc.Get(ctx, alice, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice's task", got.Title)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, auth := newTestTaskService(t)
	userID := registerUser(t, auth, "demo@example.com")

	task, err := svc.Create(ctx, userID, CreateTaskParams{
		Title:       "Original",
		Description: "keep me",
	})
	require.NoError(t, err)

	status := domain.StatusInProgress
	updated, err := svc.Update(ctx, userID, task.ID, UpdateTaskParams{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "Original", updated.Title)
	require.Equal(t, "keep me", updated.Description)
	require.Equal(t, domain.StatusInProgress, updated.Status)

	t.Run("empty title rejected", func(t *testing.T) {
		empty := ""
		_, err := svc.Update(ctx, userID, task.ID, UpdateTaskParams{Title: &empty})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bogus status rejected", func(t *testing.T) {
		bogus := domain.TaskStatus("DONE")
		_, err := svc.Update(ctx, userID, task.ID, UpdateTaskParams{Status: &bogus})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestToggleSemantics(t *testing.T) {
	ctx := context.Background()
	svc, auth := newTestTaskService(t)
	userID := registerUser(t, auth, "demo@example.com")

	tests := []struct {
		start domain.TaskStatus
		want  domain.TaskStatus
	}{
		{domain.StatusPending, domain.StatusCompleted},
		{domain.StatusInProgress, domain.StatusCompleted}, // two-state flip, not a cycle
		{domain.StatusCompleted, domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.start), func(t *testing.T) {
			task, err := svc.Create(ctx, userID, CreateTaskParams{
				Title:  "toggle " + string(tt.start),
				Status: tt.start,
			})
			require.NoError(t, err)

			toggled, err := svc.Toggle(ctx, userID, task.ID)
			require.NoError(t, err)
			require.Equal(t, tt.want, toggled.Status)
		})
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	svc, auth := newTestTaskService(t)
	userID := registerUser(t, auth, "demo@example.com")

	for i := range 15 {
		_, err := svc.Create(ctx, userID, CreateTaskParams{Title: fmt.Sprintf("Task %02d", i)})
		require.NoError(t, err)
	}

	page1, err := svc.List(ctx, userID, ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page1.Tasks, 10)
	require.EqualValues(t, 15, page1.Total)
	require.EqualValues(t, 2, page1.TotalPages)
	require.Equal(t, 1, page1.Page)

	page2, err := svc.List(ctx, userID, ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page2.Tasks, 5)
	require.EqualValues(t, 2, page2.TotalPages)

	// Newest first: the last created task leads page 1.
	require.Equal(t, "Task 14", page1.Tasks[0].Title)

	t.Run("defaults applied", func(t *testing.T) {
		page, err := svc.List(ctx, userID, ListParams{})
		require.NoError(t, err)
		require.Len(t, page.Tasks, 10)
		require.Equal(t, 1, page.Page)
	})

	t.Run("invalid status filter rejected", func(t *testing.T) {
		_, err := svc.List(ctx, userID, ListParams{Status: "DONE"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestListFilterAndSearch(t *testing.T) {
	ctx := context.Background()
	svc, auth := newTestTaskService(t)
	userID := registerUser(t, auth, "demo@example.com")

	_, err := svc.Create(ctx, userID, CreateTaskParams{Title: "Buy milk"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, CreateTaskParams{Title: "Buy bread", Status: domain.StatusCompleted})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, CreateTaskParams{Title: "Walk the dog", Status: domain.StatusInProgress})
	require.NoError(t, err)

	page, err := svc.List(ctx, userID, ListParams{Status: domain.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	require.Equal(t, "Buy bread", page.Tasks[0].Title)

	page, err = svc.List(ctx, userID, ListParams{Search: "BUY"})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 2)
	require.EqualValues(t, 2, page.Total)
}

func TestScenarioDemoFlow(t *testing.T) {
	// End-to-end slice at the service level: register, create, list,
	// toggle, delete, and confirm the task is gone.
	ctx := context.Background()
	svc, auth := newTestTaskService(t)

	pair, err := auth.Register(ctx, "demo@example.com", "password123")
	require.NoError(t, err)

	loginPair, err := auth.Login(ctx, "demo@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, loginPair.AccessToken)

	userID, err := auth.Tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)

	task, err := svc.Create(ctx, userID, CreateTaskParams{Title: "Buy milk"})
	require.NoError(t, err)

	page, err := svc.List(ctx, userID, ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	require.Equal(t, domain.StatusPending, page.Tasks[0].Status)

	toggled, err := svc.Toggle(ctx, userID, task.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, toggled.Status)

	require.NoError(t, svc.Delete(ctx, userID, task.ID))

	_, err = svc.Get(ctx, userID, task.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

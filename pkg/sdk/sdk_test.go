package sdk_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	taskhttp "github.com/aussiebroadwan/taskdeck/internal/tasks/http"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskdeck/pkg/jwtx"
	"github.com/aussiebroadwan/taskdeck/pkg/sdk"
)

func newTestClient(t *testing.T) *sdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens := &service.TokenService{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		Issuer:        "taskdeck-test",
		AccessTTL:     jwtx.DefaultAccessTokenTTL,
		RefreshTTL:    jwtx.DefaultRefreshTokenTTL,
	}

	router := taskhttp.NewRouter("test", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router.TokenService = tokens
	router.AuthService = &service.AuthService{Store: st, Tokens: tokens}
	router.TaskService = &service.TaskService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return sdk.New(srv.URL)
}

func TestClientAuthFlow(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	pair, err := client.Register(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	_, err = client.Register(ctx, "alice@example.com", "password123")
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "User already exists", apiErr.Message)

	loginPair, err := client.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, loginPair.AccessToken)

	_, err = client.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)

	refreshed, err := client.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	require.NoError(t, client.Logout(ctx))
}

func TestSessionTaskOperations(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	pair, err := client.Register(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	session := client.Session(pair)

	task, err := session.CreateTask(ctx, sdk.CreateTaskRequest{Title: "Buy milk"})
	require.NoError(t, err)
	require.Equal(t, "Buy milk", task.Title)
	require.Equal(t, "PENDING", task.Status)

	page, err := session.ListTasks(ctx, sdk.ListTasksParams{Status: "PENDING"})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Len(t, page.Tasks, 1)

	desc := "2 litres, full cream"
	updated, err := session.UpdateTask(ctx, task.ID, sdk.UpdateTaskRequest{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, desc, updated.Description)

	toggled, err := session.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "COMPLETED", toggled.Status)

	require.NoError(t, session.DeleteTask(ctx, task.ID))

	_, err = session.GetTask(ctx, task.ID)
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
	require.Equal(t, "Task not found", apiErr.Message)
}

func TestSessionRefreshRotatesTokens(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	pair, err := client.Register(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	session := client.Session(pair)

	require.NoError(t, session.Refresh(ctx))
	require.NotEmpty(t, session.Tokens().AccessToken)

	_, err = session.ListTasks(ctx, sdk.ListTasksParams{})
	require.NoError(t, err)
}

func TestSessionRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	session := client.Session(sdk.TokenPair{AccessToken: "garbage", RefreshToken: "garbage"})

	_, err := session.ListTasks(ctx, sdk.ListTasksParams{})
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)

	err = session.Refresh(ctx)
	require.Error(t, err)
	require.True(t, errors.As(err, &apiErr))
}

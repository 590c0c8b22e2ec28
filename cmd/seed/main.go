// Command seed populates the database with a demo account and a handful of
// tasks so the dashboard has something to show on first run. Safe to re-run:
// the user is looked up by email and tasks are skipped by title.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskdeck/pkg/cryptox"
	"github.com/aussiebroadwan/taskdeck/pkg/idx"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

var demoTasks = []domain.Task{
	{
		Title:       "Complete the Project Integration",
		Description: "Connect frontend with backend and verify database connection.",
		Status:      domain.StatusCompleted,
	},
	{
		Title:       "Review Design System",
		Description: "Ensure dark mode authentication pages look premium.",
		Status:      domain.StatusInProgress,
	},
	{
		Title:       "Plan Next Sprint",
		Description: "Outline features for the V2 release.",
		Status:      domain.StatusPending,
	},
	{
		Title:       "Fix Navigation Bug",
		Description: "Sidebar links should highlight correctly on mobile.",
		Status:      domain.StatusPending,
	},
}

func main() {
	dbFile := os.Getenv("DATABASE_FILE")
	if dbFile == "" {
		dbFile = "tasks.db"
	}

	st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFile))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	if err := run(context.Background(), st); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(ctx context.Context, st store.Store) error {
	user, err := ensureDemoUser(ctx, st)
	if err != nil {
		return err
	}
	log.Printf("demo user ready: %s (password: %s)", user.Email, demoPassword)

	added, err := ensureDemoTasks(ctx, st, user.ID)
	if err != nil {
		return err
	}
	log.Printf("seed complete: %d tasks added", added)
	return nil
}

func ensureDemoUser(ctx context.Context, st store.Store) (domain.User, error) {
	user, err := st.Users().GetUserByEmail(ctx, demoEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(demoPassword)
	if err != nil {
		return domain.User{}, err
	}

	user = domain.User{
		ID:           idx.New().String(),
		Email:        demoEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := st.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func ensureDemoTasks(ctx context.Context, st store.Store, userID string) (int, error) {
	existing, err := st.Tasks().ListTasks(ctx, store.TaskFilter{UserID: userID, Limit: 100})
	if err != nil {
		return 0, err
	}
	present := make(map[string]bool, len(existing))
	for _, t := range existing {
		present[t.Title] = true
	}

	added := 0
	for _, t := range demoTasks {
		if present[t.Title] {
			continue
		}

		t.ID = idx.New().String()
		t.UserID = userID
		t.CreatedAt = time.Now().UTC()
		if err := st.Tasks().CreateTask(ctx, t); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

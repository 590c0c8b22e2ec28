package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store"
)

type tasksRepo struct {
	db *sql.DB
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	const query = `
		INSERT INTO tasks (id, user_id, title, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, string(t.Status), t.CreatedAt)
	return err
}

func (r *tasksRepo) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	const query = `
		SELECT id, user_id, title, description, status, created_at
		FROM tasks
		WHERE id = ? AND user_id = ?`

	return scanTask(r.db.QueryRowContext(ctx, query, taskID, userID))
}

// filterClause builds the WHERE clause shared by ListTasks and CountTasks.
// Status is an exact, case-sensitive equality; the title search lowercases
// both sides so it is an explicit case-insensitive substring match rather
// than whatever collation the column happens to have.
func filterClause(f store.TaskFilter) (string, []any) {
	clause := ` WHERE user_id = ?`
	args := []any{f.UserID}

	if f.Status != "" {
		clause += ` AND status = ?`
		args = append(args, string(f.Status))
	}
	if f.Search != "" {
		clause += ` AND instr(lower(title), lower(?)) > 0`
		args = append(args, f.Search)
	}

	return clause, args
}

func (r *tasksRepo) ListTasks(ctx context.Context, f store.TaskFilter) ([]domain.Task, error) {
	clause, args := filterClause(f)

	// ULIDs sort by creation time, so id is a stable tiebreaker for rows
	// created within the same timestamp.
	query := `
		SELECT id, user_id, title, description, status, created_at
		FROM tasks` + clause + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) CountTasks(ctx context.Context, f store.TaskFilter) (int64, error) {
	clause, args := filterClause(f)

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`+clause, args...).
		Scan(&total)
	return total, err
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, status = ?
		WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, string(t.Status), t.ID, t.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, userID, taskID string) error {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var status string
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &status, &t.CreatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}

// requireRow maps a zero-row write to ErrNotFound so ownership misses and
// missing rows are indistinguishable to callers.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

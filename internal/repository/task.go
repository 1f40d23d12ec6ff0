package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskward/taskward/internal/models"
)

// dateLayout is the wire format for due dates.
const dateLayout = "2006-01-02"

// TaskUpdate carries a partial task update. Nil fields keep their prior values.
type TaskUpdate struct {
	Title     *string
	Completed *bool
	Priority  *string
	Category  *string
	DueDate   *string
}

// PostgresTaskRepository implements task persistence against a PostgreSQL
// database. Every statement filters by owner_id; that filter is the
// authorization mechanism, so a task belonging to another user behaves
// exactly like a missing one.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// ListByOwner fetches all tasks belonging to ownerID, ordered by creation
// time (id as tiebreaker) so listings are deterministic.
func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, completed, priority, category, due_date, created_at
		  FROM tasks WHERE owner_id = $1 ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows, ownerID)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a new task for ownerID and returns it as stored.
func (r *PostgresTaskRepository) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO tasks (id, owner_id, title, completed, priority, category, due_date)
		VALUES ($1, $2, $3, false, $4, $5, $6)
		RETURNING id, title, completed, priority, category, due_date, created_at
	`, task.ID, task.OwnerID, task.Title, task.Priority, task.Category, task.DueDate)

	created, err := scanTask(row, task.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &created, nil
}

// ToggleCompleted flips the completed flag of the owner's task in a single
// atomic statement, so concurrent toggles on the same row serialize in the
// database. Returns ErrNotFound if no such task exists for that owner.
func (r *PostgresTaskRepository) ToggleCompleted(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	row := r.DB.QueryRowContext(ctx, `
		UPDATE tasks SET completed = NOT completed
		 WHERE id = $1 AND owner_id = $2
		RETURNING id, title, completed, priority, category, due_date, created_at
	`, taskID, ownerID)

	task, err := scanTask(row, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return &task, nil
}

// Update applies a partial update to the owner's task in one statement.
// COALESCE keeps any column whose new value is NULL, so absent fields retain
// prior values without a read-then-write round trip. Returns ErrNotFound if
// no such task exists for that owner.
func (r *PostgresTaskRepository) Update(ctx context.Context, ownerID, taskID string, update TaskUpdate) (*models.Task, error) {
	row := r.DB.QueryRowContext(ctx, `
		UPDATE tasks SET
			title = COALESCE($3, title),
			completed = COALESCE($4, completed),
			priority = COALESCE($5, priority),
			category = COALESCE($6, category),
			due_date = COALESCE($7::date, due_date)
		 WHERE id = $1 AND owner_id = $2
		RETURNING id, title, completed, priority, category, due_date, created_at
	`, taskID, ownerID, update.Title, update.Completed, update.Priority, update.Category, update.DueDate)

	task, err := scanTask(row, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

// Delete removes the owner's task if present. Deleting an id that does not
// exist for that owner is not an error.
func (r *PostgresTaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`,
		taskID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, ownerID string) (models.Task, error) {
	var (
		task models.Task
		due  sql.NullTime
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Completed, &task.Priority, &task.Category, &due, &task.CreatedAt); err != nil {
		return models.Task{}, err
	}
	task.OwnerID = ownerID
	if due.Valid {
		s := due.Time.Format(dateLayout)
		task.DueDate = &s
	}
	return task, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskward/taskward/internal/models"
	"github.com/taskward/taskward/internal/repository"
)

// dueDateLayout is the accepted wire format for due dates.
const dueDateLayout = "2006-01-02"

// TaskRepository defines the persistence operations required by the task
// service. Every operation is scoped to an owner.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	Create(ctx context.Context, task models.Task) (*models.Task, error)
	ToggleCompleted(ctx context.Context, ownerID, taskID string) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, update repository.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

// CreateTaskInput carries the fields accepted when creating a task.
// Priority and Category fall back to their defaults when empty.
type CreateTaskInput struct {
	Title    string
	Priority string
	Category string
	DueDate  *string
}

// UpdateTaskInput carries a partial task update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title     *string
	Completed *bool
	Priority  *string
	Category  *string
	DueDate   *string
}

// TaskService validates task operations and delegates to a TaskRepository.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService constructs a new TaskService using the provided repository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all of the owner's tasks in a deterministic order.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create validates the input, applies defaults (medium priority, personal
// category), and stores a new task for ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	priority := in.Priority
	if priority == "" {
		priority = string(models.PriorityMedium)
	}
	if !models.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, in.Priority)
	}

	category := in.Category
	if category == "" {
		category = string(models.CategoryPersonal)
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: invalid category %q", ErrValidation, in.Category)
	}

	if err := validateDueDate(in.DueDate); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, models.Task{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Title:    title,
		Priority: priority,
		Category: category,
		DueDate:  in.DueDate,
	})
}

// Toggle flips the completion state of the owner's task.
func (s *TaskService) Toggle(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	return s.repo.ToggleCompleted(ctx, ownerID, taskID)
}

// Update applies a partial update to the owner's task. Present fields are
// validated; absent fields keep their prior values.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, in UpdateTaskInput) (*models.Task, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		in.Title = &trimmed
	}
	if in.Priority != nil && !models.ValidPriority(*in.Priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, *in.Priority)
	}
	if in.Category != nil && !models.ValidCategory(*in.Category) {
		return nil, fmt.Errorf("%w: invalid category %q", ErrValidation, *in.Category)
	}
	if err := validateDueDate(in.DueDate); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, ownerID, taskID, repository.TaskUpdate{
		Title:     in.Title,
		Completed: in.Completed,
		Priority:  in.Priority,
		Category:  in.Category,
		DueDate:   in.DueDate,
	})
}

// Delete removes the owner's task. Deleting an absent id succeeds with no
// effect.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	return s.repo.Delete(ctx, ownerID, taskID)
}

func validateDueDate(due *string) error {
	if due == nil {
		return nil
	}
	if _, err := time.Parse(dueDateLayout, *due); err != nil {
		return fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrValidation)
	}
	return nil
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward/internal/models"
	"github.com/taskward/taskward/internal/repository"
	"github.com/taskward/taskward/internal/service"
)

type mockTaskRepo struct {
	ListByOwnerFunc     func(ctx context.Context, ownerID string) ([]models.Task, error)
	CreateFunc          func(ctx context.Context, task models.Task) (*models.Task, error)
	ToggleCompletedFunc func(ctx context.Context, ownerID, taskID string) (*models.Task, error)
	UpdateFunc          func(ctx context.Context, ownerID, taskID string, update repository.TaskUpdate) (*models.Task, error)
	DeleteFunc          func(ctx context.Context, ownerID, taskID string) error
}

func (m *mockTaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}
func (m *mockTaskRepo) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	return m.CreateFunc(ctx, task)
}
func (m *mockTaskRepo) ToggleCompleted(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	return m.ToggleCompletedFunc(ctx, ownerID, taskID)
}
func (m *mockTaskRepo) Update(ctx context.Context, ownerID, taskID string, update repository.TaskUpdate) (*models.Task, error) {
	return m.UpdateFunc(ctx, ownerID, taskID, update)
}
func (m *mockTaskRepo) Delete(ctx context.Context, ownerID, taskID string) error {
	return m.DeleteFunc(ctx, ownerID, taskID)
}

func TestCreate_Defaults(t *testing.T) {
	var stored models.Task
	repo := &mockTaskRepo{
		CreateFunc: func(_ context.Context, task models.Task) (*models.Task, error) {
			stored = task
			return &task, nil
		},
	}
	svc := service.NewTaskService(repo)

	task, err := svc.Create(context.Background(), "u1", service.CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "medium", stored.Priority)
	assert.Equal(t, "personal", stored.Category)
	assert.Equal(t, "u1", stored.OwnerID)
	assert.Nil(t, stored.DueDate)
	assert.NotEmpty(t, stored.ID)
}

func TestCreate_TitleRequired(t *testing.T) {
	repo := &mockTaskRepo{
		CreateFunc: func(context.Context, models.Task) (*models.Task, error) {
			t.Fatal("Create must not be called for invalid input")
			return nil, nil
		},
	}
	svc := service.NewTaskService(repo)

	for _, title := range []string{"", "   ", "\t"} {
		_, err := svc.Create(context.Background(), "u1", service.CreateTaskInput{Title: title})
		assert.ErrorIs(t, err, service.ErrValidation)
	}
}

func TestCreate_InvalidEnums(t *testing.T) {
	repo := &mockTaskRepo{
		CreateFunc: func(context.Context, models.Task) (*models.Task, error) {
			t.Fatal("Create must not be called for invalid input")
			return nil, nil
		},
	}
	svc := service.NewTaskService(repo)

	_, err := svc.Create(context.Background(), "u1", service.CreateTaskInput{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Create(context.Background(), "u1", service.CreateTaskInput{Title: "x", Category: "hobbies"})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCreate_DueDate(t *testing.T) {
	repo := &mockTaskRepo{
		CreateFunc: func(_ context.Context, task models.Task) (*models.Task, error) {
			return &task, nil
		},
	}
	svc := service.NewTaskService(repo)

	due := "2026-09-01"
	task, err := svc.Create(context.Background(), "u1", service.CreateTaskInput{Title: "x", DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, due, *task.DueDate)

	bad := "01/09/2026"
	_, err = svc.Create(context.Background(), "u1", service.CreateTaskInput{Title: "x", DueDate: &bad})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdate_PartialPassthrough(t *testing.T) {
	var gotUpdate repository.TaskUpdate
	repo := &mockTaskRepo{
		UpdateFunc: func(_ context.Context, ownerID, taskID string, update repository.TaskUpdate) (*models.Task, error) {
			gotUpdate = update
			return &models.Task{ID: taskID, OwnerID: ownerID, Title: "Buy milk", Priority: "high", Category: "personal"}, nil
		},
	}
	svc := service.NewTaskService(repo)

	high := "high"
	_, err := svc.Update(context.Background(), "u1", "t1", service.UpdateTaskInput{Priority: &high})
	require.NoError(t, err)

	require.NotNil(t, gotUpdate.Priority)
	assert.Equal(t, "high", *gotUpdate.Priority)
	assert.Nil(t, gotUpdate.Title)
	assert.Nil(t, gotUpdate.Completed)
	assert.Nil(t, gotUpdate.Category)
	assert.Nil(t, gotUpdate.DueDate)
}

func TestUpdate_Validation(t *testing.T) {
	repo := &mockTaskRepo{
		UpdateFunc: func(context.Context, string, string, repository.TaskUpdate) (*models.Task, error) {
			t.Fatal("Update must not be called for invalid input")
			return nil, nil
		},
	}
	svc := service.NewTaskService(repo)

	empty := "  "
	_, err := svc.Update(context.Background(), "u1", "t1", service.UpdateTaskInput{Title: &empty})
	assert.ErrorIs(t, err, service.ErrValidation)

	bad := "urgent"
	_, err = svc.Update(context.Background(), "u1", "t1", service.UpdateTaskInput{Priority: &bad})
	assert.ErrorIs(t, err, service.ErrValidation)

	badDate := "tomorrow"
	_, err = svc.Update(context.Background(), "u1", "t1", service.UpdateTaskInput{DueDate: &badDate})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdate_NotFoundPassthrough(t *testing.T) {
	repo := &mockTaskRepo{
		UpdateFunc: func(context.Context, string, string, repository.TaskUpdate) (*models.Task, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := service.NewTaskService(repo)

	title := "x"
	_, err := svc.Update(context.Background(), "u1", "missing", service.UpdateTaskInput{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestToggleAndDeleteDelegate(t *testing.T) {
	repo := &mockTaskRepo{
		ToggleCompletedFunc: func(_ context.Context, ownerID, taskID string) (*models.Task, error) {
			return &models.Task{ID: taskID, OwnerID: ownerID, Completed: true}, nil
		},
		DeleteFunc: func(_ context.Context, ownerID, taskID string) error {
			return nil
		},
	}
	svc := service.NewTaskService(repo)

	task, err := svc.Toggle(context.Background(), "u1", "t1")
	require.NoError(t, err)
	assert.True(t, task.Completed)

	require.NoError(t, svc.Delete(context.Background(), "u1", "t1"))
}

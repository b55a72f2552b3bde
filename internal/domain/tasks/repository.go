package tasks

import "context"

type Repository interface {
	ListTasks(ctx context.Context, tenantID string, filter ListFilter) ([]Task, int64, error)
	GetTaskByID(ctx context.Context, tenantID, taskID string) (*Task, error)
	CreateTask(ctx context.Context, task *Task) error
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, tenantID, taskID string) (bool, error)
}

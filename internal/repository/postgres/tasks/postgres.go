package tasks

import (
	"context"
	"errors"

	tasksdomain "flowspace-go/internal/domain/tasks"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTasks(ctx context.Context, tenantID string, filter tasksdomain.ListFilter) ([]tasksdomain.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&tasksdomain.Task{}).Where("tenant_id = ?", tenantID)
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Assignee != "" {
		query = query.Where("assignee = ?", filter.Assignee)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []tasksdomain.Task
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresRepository) GetTaskByID(ctx context.Context, tenantID, taskID string) (*tasksdomain.Task, error) {
	var task tasksdomain.Task
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, taskID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasksdomain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *PostgresRepository) CreateTask(ctx context.Context, task *tasksdomain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// UpdateTask saves the whole row. Tasks carry JSON columns that change
// together with scalar fields, so partial updates buy nothing here.
func (r *PostgresRepository) UpdateTask(ctx context.Context, task *tasksdomain.Task) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", task.ID, task.TenantID).
		Save(task).Error
}

func (r *PostgresRepository) DeleteTask(ctx context.Context, tenantID, taskID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&tasksdomain.Task{}, "tenant_id = ? AND id = ?", tenantID, taskID)
	return result.RowsAffected > 0, result.Error
}

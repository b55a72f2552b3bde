package projects

import (
	"context"
	"errors"

	projectsdomain "flowspace-go/internal/domain/projects"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListProjects(ctx context.Context, tenantID string, filter projectsdomain.ListFilter) ([]projectsdomain.Project, int64, error) {
	query := r.db.WithContext(ctx).Model(&projectsdomain.Project{}).Where("tenant_id = ?", tenantID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
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

	var items []projectsdomain.Project
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresRepository) GetProjectByID(ctx context.Context, tenantID, projectID string) (*projectsdomain.Project, error) {
	var project projectsdomain.Project
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, projectID).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projectsdomain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *PostgresRepository) CreateProject(ctx context.Context, project *projectsdomain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *PostgresRepository) UpdateProject(ctx context.Context, project *projectsdomain.Project) error {
	return r.db.WithContext(ctx).
		Model(&projectsdomain.Project{}).
		Where("id = ? AND tenant_id = ?", project.ID, project.TenantID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"client":      project.Client,
			"status":      project.Status,
			"budget":      project.Budget,
			"deadline":    project.Deadline,
			"description": project.Description,
			"progress":    project.Progress,
			"updated_at":  project.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, tenantID, projectID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&projectsdomain.Project{}, "tenant_id = ? AND id = ?", tenantID, projectID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, tenantID string) (map[projectsdomain.Status]int64, error) {
	var rows []struct {
		Status projectsdomain.Status `gorm:"column:status"`
		Count  int64                 `gorm:"column:count"`
	}

	if err := r.db.WithContext(ctx).
		Model(&projectsdomain.Project{}).
		Select("status, count(*) as count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[projectsdomain.Status]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}

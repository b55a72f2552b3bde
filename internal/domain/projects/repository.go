package projects

import "context"

type Repository interface {
	ListProjects(ctx context.Context, tenantID string, filter ListFilter) ([]Project, int64, error)
	GetProjectByID(ctx context.Context, tenantID, projectID string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, tenantID, projectID string) (bool, error)
	CountByStatus(ctx context.Context, tenantID string) (map[Status]int64, error)
}

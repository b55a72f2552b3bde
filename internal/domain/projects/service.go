package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProjects(ctx context.Context, tenantID string, filter ListFilter) ([]Project, int64, error) {
	return s.repo.ListProjects(ctx, tenantID, filter)
}

func (s *Service) GetProject(ctx context.Context, tenantID, projectID string) (*Project, error) {
	return s.repo.GetProjectByID(ctx, tenantID, projectID)
}

func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(input.Client) == "" {
		return nil, fmt.Errorf("client is required")
	}

	project := Project{
		ID:           uuid.NewString(),
		TenantID:     input.TenantID,
		Name:         strings.TrimSpace(input.Name),
		Client:       strings.TrimSpace(input.Client),
		Status:       StatusNewProject,
		Budget:       input.Budget,
		Deadline:     input.Deadline,
		Description:  input.Description,
		Progress:     0,
		SportType:    input.SportType,
		Season:       input.Season,
		Location:     input.Location,
		PlayerCount:  input.PlayerCount,
		PackageType:  input.PackageType,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		RosterFile:   input.RosterFile,
	}

	if err := s.repo.CreateProject(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.Progress < 0 || input.Progress > 100 {
		return nil, ErrInvalidProgress
	}

	project, err := s.repo.GetProjectByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	project.Name = strings.TrimSpace(input.Name)
	project.Client = strings.TrimSpace(input.Client)
	project.Status = input.Status
	project.Budget = input.Budget
	project.Deadline = input.Deadline
	project.Description = input.Description
	project.Progress = input.Progress
	project.SportType = input.SportType
	project.Season = input.Season
	project.Location = input.Location
	project.PlayerCount = input.PlayerCount
	project.PackageType = input.PackageType
	project.ContactEmail = input.ContactEmail
	project.ContactPhone = input.ContactPhone
	project.RosterFile = input.RosterFile
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) DeleteProject(ctx context.Context, tenantID, projectID string) error {
	deleted, err := s.repo.DeleteProject(ctx, tenantID, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

func (s *Service) Stats(ctx context.Context, tenantID string) (Stats, error) {
	counts, err := s.repo.CountByStatus(ctx, tenantID)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for status, count := range counts {
		switch status {
		case StatusNewProject:
			stats.NewJobs += count
		case StatusArchived:
			stats.Completed += count
		case StatusGalleryLive:
			stats.Completed += count
			stats.Active += count
		default:
			stats.Active += count
		}
	}
	return stats, nil
}

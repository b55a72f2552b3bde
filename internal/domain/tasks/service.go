package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListTasks(ctx context.Context, tenantID string, filter ListFilter) ([]Task, int64, error) {
	return s.repo.ListTasks(ctx, tenantID, filter)
}

func (s *Service) GetTask(ctx context.Context, tenantID, taskID string) (*Task, error) {
	return s.repo.GetTaskByID(ctx, tenantID, taskID)
}

func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput, actor Actor) (*Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	checklist := make([]ChecklistItem, 0, len(input.Checklist))
	for _, text := range input.Checklist {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		checklist = append(checklist, ChecklistItem{ID: uuid.NewString(), Text: text})
	}

	task := Task{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		ProjectID:   input.ProjectID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Assignee:    input.Assignee,
		Status:      StatusTodo,
		Priority:    priority,
		DueDate:     input.DueDate,
		Checklist:   checklist,
		History:     []Activity{s.activity(actor, "created the task")},
	}

	if err := s.repo.CreateTask(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput, actor Actor) (*Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task, err := s.repo.GetTaskByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	task.Assignee = input.Assignee
	task.Priority = input.Priority
	task.DueDate = input.DueDate
	task.History = append(task.History, s.activity(actor, "updated the task"))
	task.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) UpdateStatus(ctx context.Context, tenantID, taskID string, status Status, actor Actor) (*Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.repo.GetTaskByID(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	task.History = append(task.History, s.activity(actor, "moved the task to "+string(status)))
	task.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) ToggleChecklistItem(ctx context.Context, tenantID, taskID, itemID string, actor Actor) (*Task, error) {
	task, err := s.repo.GetTaskByID(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range task.Checklist {
		if task.Checklist[i].ID == itemID {
			task.Checklist[i].Completed = !task.Checklist[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, ErrChecklistItemNotFound
	}

	task.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) AddComment(ctx context.Context, tenantID, taskID, content string, actor Actor) (*Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment content is required")
	}

	task, err := s.repo.GetTaskByID(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	task.Comments = append(task.Comments, Comment{
		ID:         uuid.NewString(),
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Content:    content,
		Timestamp:  s.now().UTC(),
	})
	task.History = append(task.History, s.activity(actor, "commented"))
	task.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SendToEditor hands a post-production task to an editor: the editor
// becomes the assignee, the raw material link and instructions are
// attached and the task lands back at the top of the editor's queue.
func (s *Service) SendToEditor(ctx context.Context, tenantID, taskID, editorName, sourceLink, instructions string, actor Actor) (*Task, error) {
	task, err := s.repo.GetTaskByID(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(editorName) == "" {
		editorName = "Unassigned"
	}

	task.Assignee = editorName
	task.SourceLink = sourceLink
	task.Instructions = instructions
	task.Status = StatusTodo
	task.History = append(task.History, s.activity(actor, "sent the task to "+editorName))
	task.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SubmitForReview is the editor's counterpart to SendToEditor: the
// finished deliverable link is attached and the task moves to review.
func (s *Service) SubmitForReview(ctx context.Context, tenantID, taskID, deliverableLink string, actor Actor) (*Task, error) {
	task, err := s.repo.GetTaskByID(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	task.DeliverableLink = deliverableLink
	task.Status = StatusReview
	task.History = append(task.History, s.activity(actor, "submitted the task for review"))
	task.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) DeleteTask(ctx context.Context, tenantID, taskID string) error {
	deleted, err := s.repo.DeleteTask(ctx, tenantID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func (s *Service) activity(actor Actor, action string) Activity {
	return Activity{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Timestamp: s.now().UTC(),
	}
}

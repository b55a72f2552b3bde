package tasks

import "time"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusWaiting    Status = "waiting"
	StatusRevisions  Status = "revisions"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusWaiting, StatusRevisions, StatusReview, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Comment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// Activity is one line of the task's audit trail, appended on every
// state-changing operation.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type Task struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	TenantID    string `gorm:"type:uuid;index;not null"`
	ProjectID   string `gorm:"type:uuid;index;not null"`
	Title       string `gorm:"not null"`
	Description string
	Assignee    string
	Status      Status    `gorm:"not null;default:'todo'"`
	Priority    Priority  `gorm:"not null;default:'Medium'"`
	DueDate     time.Time `gorm:"type:date"`

	Checklist []ChecklistItem `gorm:"serializer:json"`
	Comments  []Comment       `gorm:"serializer:json"`
	History   []Activity      `gorm:"serializer:json"`

	// Editor handoff fields.
	SourceLink      string
	Instructions    string
	DeliverableLink string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	ProjectID string
	Status    Status
	Assignee  string
	Limit     int
	Offset    int
}

type CreateTaskInput struct {
	TenantID    string
	ProjectID   string
	Title       string
	Description string
	Assignee    string
	Priority    Priority
	DueDate     time.Time
	Checklist   []string
}

type UpdateTaskInput struct {
	ID          string
	TenantID    string
	Title       string
	Description string
	Assignee    string
	Priority    Priority
	DueDate     time.Time
}

// Actor identifies who performed an operation, for the audit trail.
type Actor struct {
	ID   string
	Name string
}

package articles

import "time"

// Article is one entry in the tenant's internal knowledge base.
type Article struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	TenantID  string    `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"not null"`
	Category  string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type CreateArticleInput struct {
	TenantID string
	Title    string
	Category string
	Content  string
}

type UpdateArticleInput struct {
	ID       string
	TenantID string
	Title    string
	Category string
	Content  string
}

package team

import "time"

// PostComment is stored inline on the post, not as its own table.
type PostComment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Post struct {
	ID         string        `gorm:"type:uuid;primaryKey"`
	TenantID   string        `gorm:"type:uuid;index;not null"`
	AuthorID   string        `gorm:"type:uuid;not null"`
	AuthorName string        `gorm:"not null"`
	Content    string        `gorm:"not null"`
	LikedBy    []string      `gorm:"serializer:json"`
	Comments   []PostComment `gorm:"serializer:json"`
	CreatedAt  time.Time     `gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime"`
}

type Author struct {
	ID   string
	Name string
}

package forms

import "time"

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

func (f FieldType) Valid() bool {
	switch f {
	case FieldText, FieldNumber, FieldEmail, FieldDate, FieldSelect, FieldTextarea:
		return true
	}
	return false
}

type Field struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

type Form struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	TenantID    string `gorm:"type:uuid;index;not null"`
	Title       string `gorm:"not null"`
	Description string
	Fields      []Field   `gorm:"serializer:json"`
	Active      bool      `gorm:"not null;default:true"`
	Submissions int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type FieldInput struct {
	Label    string
	Type     FieldType
	Required bool
	Options  []string
}

type CreateFormInput struct {
	TenantID    string
	Title       string
	Description string
	Fields      []FieldInput
}

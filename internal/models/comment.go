package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        string         `gorm:"type:varchar(36);primarykey" json:"id"`
	TaskID    string         `gorm:"type:varchar(36);not null;index" json:"task_id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	AuthorID  string         `gorm:"type:varchar(36);not null" json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author      *Member      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:CommentID" json:"attachments,omitempty"`
}

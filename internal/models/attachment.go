package models

import (
	"time"

	"gorm.io/gorm"
)

// Attachment is an opaque file reference. The URL is stored as-is; no file
// content ever passes through this system.
type Attachment struct {
	ID        string         `gorm:"type:varchar(36);primarykey" json:"id"`
	CommentID string         `gorm:"type:varchar(36);not null;index" json:"comment_id"`
	TaskID    string         `gorm:"type:varchar(36);index" json:"task_id,omitempty"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	URL       string         `gorm:"type:text;not null" json:"url"`
	Type      string         `gorm:"type:varchar(100)" json:"type"`
	Size      int64          `gorm:"not null;default:0" json:"size"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

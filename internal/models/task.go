package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	MemberID    string         `gorm:"type:varchar(36);index" json:"member_id"`
	RequesterID string         `gorm:"type:varchar(36);index" json:"requester_id"`
	StartDate   *time.Time     `json:"start_date"`
	Effort      int            `gorm:"not null;default:1" json:"effort"`
	Priority    string         `gorm:"type:varchar(20)" json:"priority"`
	ColumnID    string         `gorm:"type:varchar(36);not null;index" json:"column_id"`
	BoardID     string         `gorm:"type:varchar(36);not null;index" json:"board_id"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignee  *Member   `gorm:"foreignKey:MemberID" json:"assignee,omitempty"`
	Requester *Member   `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Comments  []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

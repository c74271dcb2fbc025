package models

import (
	"time"

	"gorm.io/gorm"
)

// Column is an ordered bucket of tasks within a board. Position encodes the
// render order of columns on the board; task order within a column is the
// tasks' own Position values.
type Column struct {
	ID        string         `gorm:"type:varchar(36);primarykey" json:"id"`
	BoardID   string         `gorm:"type:varchar(36);not null;index" json:"board_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Board *Board `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	Tasks []Task `gorm:"foreignKey:ColumnID" json:"tasks,omitempty"`
}

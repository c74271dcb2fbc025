package models

import (
	"time"

	"gorm.io/gorm"
)

type Board struct {
	ID        string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Columns []Column `gorm:"foreignKey:BoardID" json:"columns,omitempty"`
}

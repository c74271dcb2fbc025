package models

import "time"

// OperationRecord is one row of the append-only debug log of mutating API
// requests. Records are server-generated and never exposed to the board core.
type OperationRecord struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	Path       string    `gorm:"type:varchar(255);not null" json:"path"`
	StatusCode int       `gorm:"not null" json:"status_code"`
	RecordedAt time.Time `json:"recorded_at"`
}

package repository

import (
	"github.com/takeru-oka/kanban-board/internal/models"
	"gorm.io/gorm"
)

// GormOperationRepository is a GORM implementation of OperationRepository
type GormOperationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a new OperationRepository
func NewOperationRepository(db *gorm.DB) OperationRepository {
	return &GormOperationRepository{db: db}
}

// Append records one mutating request
func (r *GormOperationRepository) Append(record *models.OperationRecord) error {
	return r.db.Create(record).Error
}

// List retrieves all recorded operations in insertion order
func (r *GormOperationRepository) List() ([]models.OperationRecord, error) {
	var records []models.OperationRecord
	if err := r.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Clear removes all recorded operations
func (r *GormOperationRepository) Clear() error {
	return r.db.Exec("DELETE FROM operation_records").Error
}

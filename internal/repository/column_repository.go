package repository

import (
	"github.com/takeru-oka/kanban-board/internal/models"
	"gorm.io/gorm"
)

// GormColumnRepository is a GORM implementation of ColumnRepository
type GormColumnRepository struct {
	db *gorm.DB
}

// NewColumnRepository creates a new ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &GormColumnRepository{db: db}
}

// Create creates a new column
func (r *GormColumnRepository) Create(column *models.Column) error {
	return r.db.Create(column).Error
}

// FindByID finds a column by ID
func (r *GormColumnRepository) FindByID(id string) (*models.Column, error) {
	var column models.Column
	if err := r.db.First(&column, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// Update updates a column
func (r *GormColumnRepository) Update(column *models.Column) error {
	return r.db.Save(column).Error
}

// Delete removes a column with its tasks, comments and attachments
func (r *GormColumnRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).
			Where("column_id = ?", id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if err := deleteTasksCascade(tx, taskIDs); err != nil {
			return err
		}

		return tx.Delete(&models.Column{}, "id = ?", id).Error
	})
}

// MaxPosition returns the highest column position on a board, -1 when the
// board has no columns
func (r *GormColumnRepository) MaxPosition(boardID string) (int, error) {
	var count int64
	if err := r.db.Model(&models.Column{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return -1, nil
	}

	var max int
	err := r.db.Model(&models.Column{}).
		Where("board_id = ?", boardID).
		Select("MAX(position)").
		Scan(&max).Error
	return max, err
}

package repository

import (
	"github.com/takeru-oka/kanban-board/internal/models"
	"gorm.io/gorm"
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// Create creates a new board
func (r *GormBoardRepository) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

// FindByID finds a board by ID
func (r *GormBoardRepository) FindByID(id string) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ListWithContents retrieves all boards with nested columns and tasks.
// Column order and task order are both position-based so a reader always
// sees the same sequence the last writer left behind.
func (r *GormBoardRepository) ListWithContents() ([]models.Board, error) {
	var boards []models.Board
	err := r.db.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("columns.position ASC, columns.created_at ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.position ASC, tasks.created_at ASC")
		}).
		Order("boards.created_at ASC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates a board
func (r *GormBoardRepository) Update(board *models.Board) error {
	return r.db.Save(board).Error
}

// Delete removes a board and all related data in a transaction
func (r *GormBoardRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).
			Where("board_id = ?", id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if err := deleteTasksCascade(tx, taskIDs); err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", id).Delete(&models.Column{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Board{}, "id = ?", id).Error
	})
}

// Count returns the number of boards
func (r *GormBoardRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Board{}).Count(&count).Error
	return count, err
}

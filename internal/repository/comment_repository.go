package repository

import (
	"github.com/takeru-oka/kanban-board/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a comment together with its attachments in one transaction.
// The attachments arrive embedded in the comment; GORM would insert them via
// the association anyway, but the explicit transaction keeps partial writes
// impossible when an attachment row is rejected.
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})
}

// ListByTaskID retrieves a task's comments newest-first with attachments
func (r *GormCommentRepository) ListByTaskID(taskID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Preload("Attachments").
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

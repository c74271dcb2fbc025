package repository

import (
	"github.com/takeru-oka/kanban-board/internal/database"
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/utils"
	"gorm.io/gorm"
)

// GormMemberRepository is a GORM implementation of MemberRepository
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new member
func (r *GormMemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// FindByID finds a member by ID
func (r *GormMemberRepository) FindByID(id string) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves all members with pagination
func (r *GormMemberRepository) List(params utils.PaginationParams) ([]models.Member, int64, error) {
	var members []models.Member

	var total int64
	if err := r.db.Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Order("created_at ASC").
		Scopes(database.Paginate(params)).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Delete removes a member and every task that references it as assignee or
// requester. The backend schema cascades member deletion to those tasks, so
// their comments and attachments go with them.
func (r *GormMemberRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).
			Where("member_id = ? OR requester_id = ?", id, id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if err := deleteTasksCascade(tx, taskIDs); err != nil {
			return err
		}

		return tx.Delete(&models.Member{}, "id = ?", id).Error
	})
}

// deleteTasksCascade removes the given tasks with their comments and
// attachments. Must run inside a transaction.
func deleteTasksCascade(tx *gorm.DB, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}

	var commentIDs []string
	if err := tx.Model(&models.Comment{}).
		Where("task_id IN ?", taskIDs).
		Pluck("id", &commentIDs).Error; err != nil {
		return err
	}

	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", commentIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
	}

	// Task-level attachments from the read path
	if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Attachment{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", taskIDs).Delete(&models.Task{}).Error
}

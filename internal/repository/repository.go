package repository

import (
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/utils"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// Create creates a new member
	Create(member *models.Member) error

	// FindByID finds a member by ID
	FindByID(id string) (*models.Member, error)

	// List retrieves all members with pagination
	List(params utils.PaginationParams) ([]models.Member, int64, error)

	// Delete removes a member and every task that references it as
	// assignee or requester, with those tasks' comments and attachments
	Delete(id string) error
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// Create creates a new board
	Create(board *models.Board) error

	// FindByID finds a board by ID
	FindByID(id string) (*models.Board, error)

	// ListWithContents retrieves all boards with their columns and tasks,
	// columns ordered by position and tasks ordered by position within each column
	ListWithContents() ([]models.Board, error)

	// Update updates a board
	Update(board *models.Board) error

	// Delete removes a board and all owned columns, tasks, comments and attachments
	Delete(id string) error

	// Count returns the number of boards
	Count() (int64, error)
}

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	// Create creates a new column
	Create(column *models.Column) error

	// FindByID finds a column by ID
	FindByID(id string) (*models.Column, error)

	// Update updates a column
	Update(column *models.Column) error

	// Delete removes a column and its tasks, comments and attachments
	Delete(id string) error

	// MaxPosition returns the highest column position on a board, -1 when empty
	MaxPosition(boardID string) (int, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete removes a task and its comments and attachments
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a comment together with its attachments in one transaction
	Create(comment *models.Comment) error

	// ListByTaskID retrieves a task's comments newest-first with attachments
	ListByTaskID(taskID string) ([]models.Comment, error)
}

// OperationRepository defines the interface for the debug operation log
type OperationRepository interface {
	// Append records one mutating request
	Append(record *models.OperationRecord) error

	// List retrieves all recorded operations in insertion order
	List() ([]models.OperationRecord, error)

	// Clear removes all recorded operations
	Clear() error
}

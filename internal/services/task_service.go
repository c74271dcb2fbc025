package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/takeru-oka/kanban-board/internal/constants"
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskIDRequired      = errors.New("task id is required")
	ErrCommentIDRequired   = errors.New("comment id is required")
	ErrTextRequired        = errors.New("text is required")
	ErrInvalidEffort       = errors.New("effort must be a positive number of hours")
	ErrColumnBoardMismatch = errors.New("column does not belong to the given board")
	ErrUnknownMember       = errors.New("referenced member does not exist")
)

// TaskService handles task and comment business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	columnRepo  repository.ColumnRepository
	memberRepo  repository.MemberRepository
	commentRepo repository.CommentRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, columnRepo repository.ColumnRepository, memberRepo repository.MemberRepository, commentRepo repository.CommentRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		columnRepo:  columnRepo,
		memberRepo:  memberRepo,
		commentRepo: commentRepo,
	}
}

// TaskInput carries the full set of assignable task fields. Task updates are
// whole replacements, so create and update share this shape.
type TaskInput struct {
	ID          string
	Title       string
	Description string
	MemberID    string
	RequesterID string
	StartDate   *time.Time
	Effort      int
	Priority    string
	ColumnID    string
	BoardID     string
	Position    int
}

// CreateCommentInput represents input for creating a comment
type CreateCommentInput struct {
	ID          string
	TaskID      string
	Text        string
	AuthorID    string
	Attachments []AttachmentInput
}

// AttachmentInput describes one attachment accompanying a comment
type AttachmentInput struct {
	ID   string
	Name string
	URL  string
	Type string
	Size int64
}

// CreateTask creates a new task after validating its references
func (s *TaskService) CreateTask(input TaskInput) (*models.Task, error) {
	if input.ID == "" {
		return nil, ErrTaskIDRequired
	}
	if err := s.validateTaskInput(&input); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		MemberID:    input.MemberID,
		RequesterID: input.RequesterID,
		StartDate:   input.StartDate,
		Effort:      input.Effort,
		Priority:    input.Priority,
		ColumnID:    input.ColumnID,
		BoardID:     input.BoardID,
		Position:    input.Position,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces all assignable fields of an existing task
func (s *TaskService) UpdateTask(taskID string, input TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.validateTaskInput(&input); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.MemberID = input.MemberID
	task.RequesterID = input.RequesterID
	task.StartDate = input.StartDate
	task.Effort = input.Effort
	task.Priority = input.Priority
	task.ColumnID = input.ColumnID
	task.BoardID = input.BoardID
	task.Position = input.Position

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task and its comments
func (s *TaskService) DeleteTask(taskID string) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ListComments returns a task's comments newest-first
func (s *TaskService) ListComments(taskID string) ([]models.Comment, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comments, err := s.commentRepo.ListByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// CreateComment creates a comment, optionally with attachments
func (s *TaskService) CreateComment(input CreateCommentInput) (*models.Comment, error) {
	if input.ID == "" {
		return nil, ErrCommentIDRequired
	}
	if input.Text == "" {
		return nil, ErrTextRequired
	}

	if _, err := s.taskRepo.FindByID(input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.AuthorID != "" {
		if err := s.ensureMemberExists(input.AuthorID); err != nil {
			return nil, err
		}
	}

	comment := &models.Comment{
		ID:       input.ID,
		TaskID:   input.TaskID,
		Text:     input.Text,
		AuthorID: input.AuthorID,
	}

	for _, a := range input.Attachments {
		comment.Attachments = append(comment.Attachments, models.Attachment{
			ID:        a.ID,
			CommentID: input.ID,
			TaskID:    input.TaskID,
			Name:      a.Name,
			URL:       a.URL,
			Type:      a.Type,
			Size:      a.Size,
		})
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// validateTaskInput checks required fields and referential consistency.
// Referential integrity lives here, not in the browser core.
func (s *TaskService) validateTaskInput(input *TaskInput) error {
	if input.Title == "" {
		return ErrTitleRequired
	}
	if input.Effort <= 0 {
		return ErrInvalidEffort
	}
	if input.Priority == "" {
		input.Priority = constants.DefaultPriority
	}

	column, err := s.columnRepo.FindByID(input.ColumnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColumnNotFound
		}
		return fmt.Errorf("failed to find column: %w", err)
	}
	if column.BoardID != input.BoardID {
		return ErrColumnBoardMismatch
	}

	for _, memberID := range []string{input.MemberID, input.RequesterID} {
		if memberID == "" {
			continue
		}
		if err := s.ensureMemberExists(memberID); err != nil {
			return err
		}
	}

	return nil
}

func (s *TaskService) ensureMemberExists(memberID string) error {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownMember
		}
		return fmt.Errorf("failed to verify member: %w", err)
	}
	return nil
}

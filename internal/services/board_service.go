package services

import (
	"errors"
	"fmt"

	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBoardNotFound    = errors.New("board not found")
	ErrColumnNotFound   = errors.New("column not found")
	ErrBoardIDRequired  = errors.New("board id is required")
	ErrColumnIDRequired = errors.New("column id is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleEmpty       = errors.New("title cannot be empty")
)

// BoardService handles board and column business logic
type BoardService struct {
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
}

// NewBoardService creates a new BoardService
func NewBoardService(boardRepo repository.BoardRepository, columnRepo repository.ColumnRepository) *BoardService {
	return &BoardService{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
	}
}

// CreateBoardInput represents input for creating a board
type CreateBoardInput struct {
	ID    string
	Title string
}

// CreateColumnInput represents input for creating a column
type CreateColumnInput struct {
	ID      string
	BoardID string
	Title   string
}

// ListBoards returns all boards with nested columns and tasks in stable order
func (s *BoardService) ListBoards() ([]models.Board, error) {
	boards, err := s.boardRepo.ListWithContents()
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// CreateBoard creates a new board with a caller-supplied id
func (s *BoardService) CreateBoard(input CreateBoardInput) (*models.Board, error) {
	if input.ID == "" {
		return nil, ErrBoardIDRequired
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	board := &models.Board{
		ID:    input.ID,
		Title: input.Title,
	}

	if err := s.boardRepo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// RenameBoard updates a board's title
func (s *BoardService) RenameBoard(boardID, title string) (*models.Board, error) {
	if title == "" {
		return nil, ErrTitleEmpty
	}

	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	board.Title = title
	if err := s.boardRepo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// DeleteBoard removes a board and everything it owns. The at-least-one-board
// rule is the client's to enforce; the store deletes whatever it is told to.
func (s *BoardService) DeleteBoard(boardID string) error {
	if _, err := s.boardRepo.FindByID(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBoardNotFound
		}
		return fmt.Errorf("failed to find board: %w", err)
	}

	if err := s.boardRepo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}

// CreateColumn creates a new column at the end of its board
func (s *BoardService) CreateColumn(input CreateColumnInput) (*models.Column, error) {
	if input.ID == "" {
		return nil, ErrColumnIDRequired
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.boardRepo.FindByID(input.BoardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	maxPos, err := s.columnRepo.MaxPosition(input.BoardID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve column position: %w", err)
	}

	column := &models.Column{
		ID:       input.ID,
		BoardID:  input.BoardID,
		Title:    input.Title,
		Position: maxPos + 1,
	}

	if err := s.columnRepo.Create(column); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	return column, nil
}

// RenameColumn updates a column's title
func (s *BoardService) RenameColumn(columnID, title string) (*models.Column, error) {
	if title == "" {
		return nil, ErrTitleEmpty
	}

	column, err := s.columnRepo.FindByID(columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to find column: %w", err)
	}

	column.Title = title
	if err := s.columnRepo.Update(column); err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}

	return column, nil
}

// DeleteColumn removes a column and its tasks
func (s *BoardService) DeleteColumn(columnID string) error {
	if _, err := s.columnRepo.FindByID(columnID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColumnNotFound
		}
		return fmt.Errorf("failed to find column: %w", err)
	}

	if err := s.columnRepo.Delete(columnID); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}

	return nil
}

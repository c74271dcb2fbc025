package board

import (
	"context"

	"github.com/takeru-oka/kanban-board/internal/models"
)

// Persistence is the backend collaborator. Every id is supplied by the
// caller; the collaborator generates none. Failures are plain errors, never
// partial success. Cascading deletes are the collaborator's job; the store
// mirrors them locally so the rendered state matches.
type Persistence interface {
	FetchMembers(ctx context.Context) ([]models.Member, error)
	FetchBoards(ctx context.Context) ([]models.Board, error)

	CreateMember(ctx context.Context, member models.Member) error
	DeleteMember(ctx context.Context, id string) error

	CreateBoard(ctx context.Context, b models.Board) error
	UpdateBoardTitle(ctx context.Context, id, title string) error
	DeleteBoard(ctx context.Context, id string) error

	CreateColumn(ctx context.Context, column models.Column) error
	UpdateColumnTitle(ctx context.Context, id, title string) error
	DeleteColumn(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task models.Task) error
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error

	CreateComment(ctx context.Context, comment models.Comment) error
}

// DebugLog is the secondary collaborator behind the observability panel.
// The board core never calls it.
type DebugLog interface {
	Operations(ctx context.Context) ([]models.OperationRecord, error)
	ClearOperations(ctx context.Context) error
}

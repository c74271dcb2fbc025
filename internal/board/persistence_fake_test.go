package board

import (
	"context"
	"sync"

	"github.com/takeru-oka/kanban-board/internal/models"
)

// fakePersistence records every call and fails on demand. It performs no
// referential checks of its own, like a collaborator that trusts its input
// until the database says otherwise.
type fakePersistence struct {
	mu sync.Mutex

	members []models.Member
	boards  []models.Board

	calls  []string
	failOn map[string]error
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{failOn: map[string]error{}}
}

func (f *fakePersistence) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.failOn[name]
}

func (f *fakePersistence) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakePersistence) FetchMembers(ctx context.Context) ([]models.Member, error) {
	if err := f.record("FetchMembers"); err != nil {
		return nil, err
	}
	return f.members, nil
}

func (f *fakePersistence) FetchBoards(ctx context.Context) ([]models.Board, error) {
	if err := f.record("FetchBoards"); err != nil {
		return nil, err
	}
	return f.boards, nil
}

func (f *fakePersistence) CreateMember(ctx context.Context, member models.Member) error {
	return f.record("CreateMember")
}

func (f *fakePersistence) DeleteMember(ctx context.Context, id string) error {
	return f.record("DeleteMember")
}

func (f *fakePersistence) CreateBoard(ctx context.Context, b models.Board) error {
	return f.record("CreateBoard")
}

func (f *fakePersistence) UpdateBoardTitle(ctx context.Context, id, title string) error {
	return f.record("UpdateBoardTitle")
}

func (f *fakePersistence) DeleteBoard(ctx context.Context, id string) error {
	return f.record("DeleteBoard")
}

func (f *fakePersistence) CreateColumn(ctx context.Context, column models.Column) error {
	return f.record("CreateColumn")
}

func (f *fakePersistence) UpdateColumnTitle(ctx context.Context, id, title string) error {
	return f.record("UpdateColumnTitle")
}

func (f *fakePersistence) DeleteColumn(ctx context.Context, id string) error {
	return f.record("DeleteColumn")
}

func (f *fakePersistence) CreateTask(ctx context.Context, task models.Task) error {
	return f.record("CreateTask")
}

func (f *fakePersistence) UpdateTask(ctx context.Context, task models.Task) error {
	return f.record("UpdateTask")
}

func (f *fakePersistence) DeleteTask(ctx context.Context, id string) error {
	return f.record("DeleteTask")
}

func (f *fakePersistence) CreateComment(ctx context.Context, comment models.Comment) error {
	return f.record("CreateComment")
}

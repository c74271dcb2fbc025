package board

import (
	"context"
	"sync"

	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/utils"
)

// FailurePolicy decides what happens to the optimistic local state when the
// backing persistence call fails.
type FailurePolicy int

const (
	// FailureReportOnly keeps the local state and surfaces the error. This
	// is the default: the client may be ahead of the server until the next
	// Load, which is the accepted tradeoff.
	FailureReportOnly FailurePolicy = iota

	// FailureRollback restores the pre-mutation snapshot. The restore is
	// whole-store, so mutations applied after the failed one are rolled
	// back with it; last response wins either way.
	FailureRollback
)

// Reporter receives user-visible errors from failed persistence calls.
type Reporter func(error)

// Coordinator funnels every mutation: apply locally first, then dispatch
// the matching persistence call asynchronously. Concurrent mutations are
// neither queued nor deduplicated; the last write to reach the collaborator
// wins. Nothing is retried and in-flight calls cannot be cancelled.
type Coordinator struct {
	store       *Store
	persistence Persistence
	policy      FailurePolicy
	report      Reporter

	wg sync.WaitGroup
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithFailurePolicy selects the failure policy.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(c *Coordinator) { c.policy = p }
}

// WithReporter sets the error reporter.
func WithReporter(r Reporter) Option {
	return func(c *Coordinator) { c.report = r }
}

// NewCoordinator creates a Coordinator over the given store and collaborator.
func NewCoordinator(store *Store, persistence Persistence, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:       store,
		persistence: persistence,
		policy:      FailureReportOnly,
		report:      func(error) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the underlying store for reads.
func (c *Coordinator) Store() *Store {
	return c.store
}

// Load delegates to the store. Not optimistic: it is the one operation that
// waits for the collaborator.
func (c *Coordinator) Load(ctx context.Context) error {
	return c.store.Load(ctx)
}

// Wait blocks until every dispatched persistence call has resolved.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// apply runs mutate under the store lock, then dispatches call in the
// background. mutate returning false means the referenced state does not
// exist locally; nothing is sent and ErrNotFound comes back.
func (c *Coordinator) apply(op, entity, id string, mutate func() bool, call func(context.Context) error) error {
	c.store.mu.Lock()
	var snap *snapshot
	if c.policy == FailureRollback {
		snap = c.store.snapshotLocked()
	}
	ok := mutate()
	c.store.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := call(context.Background()); err != nil {
			if c.policy == FailureRollback && snap != nil {
				c.store.mu.Lock()
				c.store.restoreLocked(snap)
				c.store.mu.Unlock()
			}
			c.report(&PersistenceError{Op: op, Entity: entity, ID: id, Err: err})
		}
	}()

	return nil
}

// CreateMember adds a member locally and persists it. Like every create,
// the id is minted on the client when the caller left it empty; the
// collaborator never generates identifiers.
func (c *Coordinator) CreateMember(m models.Member) error {
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	return c.apply("create", "member", m.ID,
		func() bool { c.store.addMemberLocked(m); return true },
		func(ctx context.Context) error { return c.persistence.CreateMember(ctx, m) })
}

// DeleteMember removes a member and, mirroring the backend cascade, every
// task that references it.
func (c *Coordinator) DeleteMember(id string) error {
	return c.apply("delete", "member", id,
		func() bool { return c.store.removeMemberLocked(id) },
		func(ctx context.Context) error { return c.persistence.DeleteMember(ctx, id) })
}

// CreateBoard adds a board locally and persists it.
func (c *Coordinator) CreateBoard(b models.Board) error {
	if b.ID == "" {
		b.ID = utils.NewID()
	}
	return c.apply("create", "board", b.ID,
		func() bool { c.store.addBoardLocked(b); return true },
		func(ctx context.Context) error { return c.persistence.CreateBoard(ctx, b) })
}

// RenameBoard retitles a board.
func (c *Coordinator) RenameBoard(id, title string) error {
	return c.apply("update", "board", id,
		func() bool { return c.store.renameBoardLocked(id, title) },
		func(ctx context.Context) error { return c.persistence.UpdateBoardTitle(ctx, id, title) })
}

// DeleteBoard removes a board and everything it owns. Deleting the last
// remaining board is rejected locally; no network call is issued.
func (c *Coordinator) DeleteBoard(id string) error {
	c.store.mu.Lock()
	if len(c.store.boards) <= 1 {
		c.store.mu.Unlock()
		return &ValidationError{Reason: "cannot delete the last board"}
	}
	c.store.mu.Unlock()

	return c.apply("delete", "board", id,
		func() bool { return c.store.removeBoardLocked(id) },
		func(ctx context.Context) error { return c.persistence.DeleteBoard(ctx, id) })
}

// CreateColumn appends a column to its board.
func (c *Coordinator) CreateColumn(col models.Column) error {
	if col.ID == "" {
		col.ID = utils.NewID()
	}
	return c.apply("create", "column", col.ID,
		func() bool { return c.store.addColumnLocked(col) },
		func(ctx context.Context) error { return c.persistence.CreateColumn(ctx, col) })
}

// RenameColumn retitles a column.
func (c *Coordinator) RenameColumn(id, title string) error {
	return c.apply("update", "column", id,
		func() bool { return c.store.renameColumnLocked(id, title) },
		func(ctx context.Context) error { return c.persistence.UpdateColumnTitle(ctx, id, title) })
}

// DeleteColumn removes a column and its tasks.
func (c *Coordinator) DeleteColumn(id string) error {
	return c.apply("delete", "column", id,
		func() bool { return c.store.removeColumnLocked(id) },
		func(ctx context.Context) error { return c.persistence.DeleteColumn(ctx, id) })
}

// CreateTask inserts a task into its column. No referential check is made
// on member ids here; that is the collaborator's responsibility.
func (c *Coordinator) CreateTask(t models.Task) error {
	if t.ID == "" {
		t.ID = utils.NewID()
	}
	return c.apply("create", "task", t.ID,
		func() bool { return c.store.addTaskLocked(t) },
		func(ctx context.Context) error { return c.persistence.CreateTask(ctx, t) })
}

// UpdateTask replaces a task's assignable fields.
func (c *Coordinator) UpdateTask(t models.Task) error {
	return c.apply("update", "task", t.ID,
		func() bool { return c.store.updateTaskLocked(t) },
		func(ctx context.Context) error { return c.persistence.UpdateTask(ctx, t) })
}

// DeleteTask removes a task and its comments.
func (c *Coordinator) DeleteTask(id string) error {
	return c.apply("delete", "task", id,
		func() bool { return c.store.removeTaskLocked(id) },
		func(ctx context.Context) error { return c.persistence.DeleteTask(ctx, id) })
}

// AddComment prepends a comment to its task.
func (c *Coordinator) AddComment(comment models.Comment) error {
	if comment.ID == "" {
		comment.ID = utils.NewID()
	}
	return c.apply("create", "comment", comment.ID,
		func() bool { return c.store.addCommentLocked(comment) },
		func(ctx context.Context) error { return c.persistence.CreateComment(ctx, comment) })
}

// MoveColumn reorders columns locally. Column order is never persisted: the
// backend has no column-order write path for drags, so the arrangement
// lives only in this session.
func (c *Coordinator) MoveColumn(draggedID, targetID string) {
	c.store.mu.Lock()
	c.store.moveColumnLocked(draggedID, targetID)
	c.store.mu.Unlock()
}

// MoveTask moves a task between (or within) columns at the given index and
// persists the task's new column. The local splice is atomic; the network
// confirmation is eventually consistent.
func (c *Coordinator) MoveTask(taskID, srcColumnID, dstColumnID string, index int) error {
	var payload models.Task
	return c.apply("move", "task", taskID,
		func() bool {
			if !c.store.moveTaskLocked(taskID, srcColumnID, dstColumnID, index) {
				return false
			}
			_, _, t := c.store.taskLocked(taskID)
			payload = *t
			payload.Comments = nil
			return true
		},
		func(ctx context.Context) error { return c.persistence.UpdateTask(ctx, payload) })
}

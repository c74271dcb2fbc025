package board

import (
	"context"
	"sync"

	"github.com/takeru-oka/kanban-board/internal/models"
)

// Board is the client-side view of a board: identity plus an explicit
// ordered sequence of columns. Positional order is encoded by the slice,
// never by map iteration.
type Board struct {
	ID      string
	Title   string
	Columns []*Column
}

// Column pairs a column's identity with its ordered task sequence.
type Column struct {
	ID      string
	BoardID string
	Title   string
	Tasks   []*models.Task
}

// Store holds the current known state of all boards and members as last
// delivered by the persistence collaborator. The Coordinator is the only
// writer; presentation code reads through the accessors and never mutates.
type Store struct {
	mu          sync.Mutex
	persistence Persistence

	members   []models.Member
	boards    []*Board
	selection Selection
}

// NewStore creates an empty store backed by the given collaborator.
func NewStore(p Persistence) *Store {
	return &Store{persistence: p}
}

// Load fetches members and all boards with their nested columns and tasks,
// replacing local state wholesale. On failure the prior state is retained
// and a *LoadError is returned.
func (s *Store) Load(ctx context.Context) error {
	members, err := s.persistence.FetchMembers(ctx)
	if err != nil {
		return &LoadError{Err: err}
	}

	rawBoards, err := s.persistence.FetchBoards(ctx)
	if err != nil {
		return &LoadError{Err: err}
	}

	boards := make([]*Board, 0, len(rawBoards))
	for _, rb := range rawBoards {
		b := &Board{ID: rb.ID, Title: rb.Title}
		for _, rc := range rb.Columns {
			col := &Column{ID: rc.ID, BoardID: rc.BoardID, Title: rc.Title}
			for i := range rc.Tasks {
				task := rc.Tasks[i]
				col.Tasks = append(col.Tasks, &task)
			}
			b.Columns = append(b.Columns, col)
		}
		boards = append(boards, b)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = members
	s.boards = boards

	// Keep the selected board when it survived the reload, otherwise fall
	// back to the first board.
	if s.boardLocked(s.selection.BoardID) == nil {
		s.selection.BoardID = ""
		if len(s.boards) > 0 {
			s.selection.BoardID = s.boards[0].ID
		}
	}

	return nil
}

// SelectBoard switches the active board. Unknown ids leave the selection
// untouched and return ErrNotFound.
func (s *Store) SelectBoard(boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.boardLocked(boardID) == nil {
		return ErrNotFound
	}
	s.selection.BoardID = boardID
	return nil
}

// Boards returns the known boards in insertion order.
func (s *Store) Boards() []*Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Board, len(s.boards))
	copy(out, s.boards)
	return out
}

// Members returns the known members.
func (s *Store) Members() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Member, len(s.members))
	copy(out, s.members)
	return out
}

// ActiveBoard returns the currently selected board, nil when none.
func (s *Store) ActiveBoard() *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boardLocked(s.selection.BoardID)
}

// Columns returns the active board's columns in order. The rendered column
// set is always derived from here; there is no cached duplicate.
func (s *Store) Columns() []*Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.boardLocked(s.selection.BoardID)
	if b == nil {
		return nil
	}
	out := make([]*Column, len(b.Columns))
	copy(out, b.Columns)
	return out
}

// --- locked lookup helpers ---

func (s *Store) boardLocked(id string) *Board {
	if id == "" {
		return nil
	}
	for _, b := range s.boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *Store) columnLocked(id string) (*Board, int, *Column) {
	for _, b := range s.boards {
		for i, c := range b.Columns {
			if c.ID == id {
				return b, i, c
			}
		}
	}
	return nil, -1, nil
}

func (s *Store) taskLocked(id string) (*Column, int, *models.Task) {
	for _, b := range s.boards {
		for _, c := range b.Columns {
			for i, t := range c.Tasks {
				if t.ID == id {
					return c, i, t
				}
			}
		}
	}
	return nil, -1, nil
}

// --- locked local transitions (called by the Coordinator) ---

func (s *Store) addMemberLocked(m models.Member) {
	s.members = append(s.members, m)
}

// removeMemberLocked mirrors the backend cascade: tasks assigned to or
// requested by the member disappear with it.
func (s *Store) removeMemberLocked(id string) bool {
	idx := -1
	for i, m := range s.members {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.members = append(s.members[:idx], s.members[idx+1:]...)

	for _, b := range s.boards {
		for _, c := range b.Columns {
			kept := c.Tasks[:0]
			for _, t := range c.Tasks {
				if t.MemberID == id || t.RequesterID == id {
					if s.selection.TaskID == t.ID {
						s.selection.TaskID = ""
					}
					continue
				}
				kept = append(kept, t)
			}
			c.Tasks = kept
		}
	}

	if s.selection.MemberID == id {
		s.selection.MemberID = ""
	}
	return true
}

func (s *Store) addBoardLocked(b models.Board) {
	nb := &Board{ID: b.ID, Title: b.Title}
	s.boards = append(s.boards, nb)
	if s.selection.BoardID == "" {
		s.selection.BoardID = nb.ID
	}
}

func (s *Store) renameBoardLocked(id, title string) bool {
	b := s.boardLocked(id)
	if b == nil {
		return false
	}
	b.Title = title
	return true
}

func (s *Store) removeBoardLocked(id string) bool {
	idx := -1
	for i, b := range s.boards {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	removed := s.boards[idx]
	s.boards = append(s.boards[:idx], s.boards[idx+1:]...)

	if s.selection.BoardID == id {
		s.selection.BoardID = ""
		if len(s.boards) > 0 {
			s.selection.BoardID = s.boards[0].ID
		}
	}
	if col, _, _ := s.taskLocked(s.selection.TaskID); col == nil {
		// Selected task lived on the removed board, if anywhere.
		for _, c := range removed.Columns {
			for _, t := range c.Tasks {
				if t.ID == s.selection.TaskID {
					s.selection.TaskID = ""
				}
			}
		}
	}
	return true
}

func (s *Store) addColumnLocked(c models.Column) bool {
	b := s.boardLocked(c.BoardID)
	if b == nil {
		return false
	}
	b.Columns = append(b.Columns, &Column{ID: c.ID, BoardID: c.BoardID, Title: c.Title})
	return true
}

func (s *Store) renameColumnLocked(id, title string) bool {
	_, _, c := s.columnLocked(id)
	if c == nil {
		return false
	}
	c.Title = title
	return true
}

func (s *Store) removeColumnLocked(id string) bool {
	b, idx, col := s.columnLocked(id)
	if col == nil {
		return false
	}
	for _, t := range col.Tasks {
		if s.selection.TaskID == t.ID {
			s.selection.TaskID = ""
		}
	}
	b.Columns = append(b.Columns[:idx], b.Columns[idx+1:]...)
	return true
}

func (s *Store) addTaskLocked(t models.Task) bool {
	_, _, col := s.columnLocked(t.ColumnID)
	if col == nil {
		return false
	}
	idx := clampIndex(t.Position, len(col.Tasks))
	col.Tasks = insertTask(col.Tasks, idx, &t)
	return true
}

func (s *Store) updateTaskLocked(t models.Task) bool {
	col, idx, cur := s.taskLocked(t.ID)
	if cur == nil {
		return false
	}

	comments := cur.Comments
	*cur = t
	cur.Comments = comments

	if col.ID != t.ColumnID {
		// Field edit that also moved the task: splice it across.
		_, _, dst := s.columnLocked(t.ColumnID)
		if dst == nil {
			cur.ColumnID = col.ID
			cur.BoardID = col.BoardID
			return true
		}
		col.Tasks = append(col.Tasks[:idx], col.Tasks[idx+1:]...)
		dst.Tasks = insertTask(dst.Tasks, clampIndex(t.Position, len(dst.Tasks)), cur)
		cur.BoardID = dst.BoardID
	}
	return true
}

func (s *Store) removeTaskLocked(id string) bool {
	col, idx, t := s.taskLocked(id)
	if t == nil {
		return false
	}
	col.Tasks = append(col.Tasks[:idx], col.Tasks[idx+1:]...)
	if s.selection.TaskID == id {
		s.selection.TaskID = ""
	}
	return true
}

// addCommentLocked prepends: comments read newest-first.
func (s *Store) addCommentLocked(c models.Comment) bool {
	_, _, t := s.taskLocked(c.TaskID)
	if t == nil {
		return false
	}
	t.Comments = append([]models.Comment{c}, t.Comments...)
	return true
}

// moveColumnLocked removes the dragged column and reinserts it immediately
// before the target column's current position. Pure positional change, never
// persisted.
func (s *Store) moveColumnLocked(draggedID, targetID string) bool {
	if draggedID == targetID {
		return false
	}
	b1, srcIdx, dragged := s.columnLocked(draggedID)
	b2, _, target := s.columnLocked(targetID)
	if dragged == nil || target == nil || b1 != b2 {
		return false
	}

	b1.Columns = append(b1.Columns[:srcIdx], b1.Columns[srcIdx+1:]...)

	dstIdx := 0
	for i, c := range b1.Columns {
		if c.ID == targetID {
			dstIdx = i
			break
		}
	}
	b1.Columns = append(b1.Columns, nil)
	copy(b1.Columns[dstIdx+1:], b1.Columns[dstIdx:])
	b1.Columns[dstIdx] = dragged
	return true
}

// moveTaskLocked is the atomic cross-column splice: both sequences are
// updated under one lock so no reader ever sees the task in zero or two
// columns. The index is clamped to [0, len]; out-of-range input never fails.
func (s *Store) moveTaskLocked(taskID, srcColumnID, dstColumnID string, index int) bool {
	_, _, src := s.columnLocked(srcColumnID)
	_, _, dst := s.columnLocked(dstColumnID)
	if src == nil || dst == nil {
		return false
	}

	taskIdx := -1
	for i, t := range src.Tasks {
		if t.ID == taskID {
			taskIdx = i
			break
		}
	}
	if taskIdx < 0 {
		return false
	}

	task := src.Tasks[taskIdx]
	src.Tasks = append(src.Tasks[:taskIdx], src.Tasks[taskIdx+1:]...)

	idx := clampIndex(index, len(dst.Tasks))
	dst.Tasks = insertTask(dst.Tasks, idx, task)
	task.ColumnID = dst.ID
	task.BoardID = dst.BoardID
	task.Position = idx
	return true
}

func clampIndex(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}

func insertTask(tasks []*models.Task, idx int, t *models.Task) []*models.Task {
	tasks = append(tasks, nil)
	copy(tasks[idx+1:], tasks[idx:])
	tasks[idx] = t
	return tasks
}

// --- snapshot/restore for the rollback failure policy ---

type snapshot struct {
	members   []models.Member
	boards    []*Board
	selection Selection
}

func (s *Store) snapshotLocked() *snapshot {
	snap := &snapshot{selection: s.selection}
	snap.members = make([]models.Member, len(s.members))
	copy(snap.members, s.members)

	snap.boards = make([]*Board, 0, len(s.boards))
	for _, b := range s.boards {
		nb := &Board{ID: b.ID, Title: b.Title}
		for _, c := range b.Columns {
			nc := &Column{ID: c.ID, BoardID: c.BoardID, Title: c.Title}
			for _, t := range c.Tasks {
				tc := *t
				nc.Tasks = append(nc.Tasks, &tc)
			}
			nb.Columns = append(nb.Columns, nc)
		}
		snap.boards = append(snap.boards, nb)
	}
	return snap
}

func (s *Store) restoreLocked(snap *snapshot) {
	s.members = snap.members
	s.boards = snap.boards
	s.selection = snap.selection
}

package board

// DragKind says what a drag session is carrying.
type DragKind int

const (
	DragNone DragKind = iota
	DragColumn
	DragTask
)

// DragSession is the reorder engine's input surface: an explicit
// start/over/drop state machine callable from any input mechanism, with no
// ties to pointer events or a UI toolkit. One session models one gesture;
// it is not meant to be shared across goroutines.
type DragSession struct {
	coordinator *Coordinator

	kind           DragKind
	itemID         string
	sourceColumnID string

	targetColumnID string
	targetIndex    int
	hasTarget      bool
}

// NewDragSession creates an idle drag session.
func NewDragSession(c *Coordinator) *DragSession {
	return &DragSession{coordinator: c}
}

// Active reports whether a drag is in progress.
func (d *DragSession) Active() bool {
	return d.kind != DragNone
}

// StartColumnDrag begins dragging a column.
func (d *DragSession) StartColumnDrag(columnID string) {
	d.reset()
	d.kind = DragColumn
	d.itemID = columnID
}

// StartTaskDrag begins dragging a task out of its source column.
func (d *DragSession) StartTaskDrag(taskID, sourceColumnID string) {
	d.reset()
	d.kind = DragTask
	d.itemID = taskID
	d.sourceColumnID = sourceColumnID
}

// DragOver records the current hover target. For a column drag the index is
// ignored; the dragged column lands immediately before the target column.
func (d *DragSession) DragOver(targetColumnID string, index int) {
	if d.kind == DragNone {
		return
	}
	d.targetColumnID = targetColumnID
	d.targetIndex = index
	d.hasTarget = true
}

// Drop applies the gesture to local state and, for task moves, triggers the
// persistence update. Dropping with no recorded target is a cancel.
func (d *DragSession) Drop() error {
	defer d.reset()

	if d.kind == DragNone || !d.hasTarget {
		return nil
	}

	switch d.kind {
	case DragColumn:
		d.coordinator.MoveColumn(d.itemID, d.targetColumnID)
		return nil
	case DragTask:
		return d.coordinator.MoveTask(d.itemID, d.sourceColumnID, d.targetColumnID, d.targetIndex)
	}
	return nil
}

// Cancel abandons the gesture without touching state.
func (d *DragSession) Cancel() {
	d.reset()
}

func (d *DragSession) reset() {
	*d = DragSession{coordinator: d.coordinator}
}

package service

import (
	"context"

	"manageme.app/hub/internal/model"
)

// DragSession models one drag-and-drop gesture over a kanban board,
// decoupled from any UI toolkit's event system. It is a cooperative,
// single-gesture object: one session per pointer, driven by discrete
// events that never interleave, so it carries no locking.
type DragSession struct {
	kanban KanbanService

	inFlight *model.Task
	hovered  model.TaskStatus
	hasHover bool
}

func NewDragSession(kanban KanbanService) *DragSession {
	return &DragSession{kanban: kanban}
}

// Start records the task being dragged. No entity mutation happens yet.
func (d *DragSession) Start(task model.Task) {
	t := task
	d.inFlight = &t
}

// HoverColumn records the column currently under the pointer, purely
// for UI highlight. Idempotent, no mutation.
func (d *DragSession) HoverColumn(column model.TaskStatus) {
	d.hovered = column
	d.hasHover = true
}

// Hovered returns the highlighted column, if any.
func (d *DragSession) Hovered() (model.TaskStatus, bool) {
	return d.hovered, d.hasHover
}

// Leave clears the hover highlight without ending the gesture.
func (d *DragSession) Leave() {
	d.hovered = ""
	d.hasHover = false
}

// Dragging reports whether a task is in flight.
func (d *DragSession) Dragging() bool {
	return d.inFlight != nil
}

// Drop completes the gesture. With no task in flight it is a no-op.
// Dropping onto the task's current column is a null transition: no
// mutation, no status-changed event. Otherwise the task moves to the
// column. In-flight and hover state are cleared regardless of outcome.
func (d *DragSession) Drop(ctx context.Context, column model.TaskStatus) (*model.Task, bool, error) {
	task := d.inFlight
	d.inFlight = nil
	d.hovered = ""
	d.hasHover = false

	if task == nil {
		return nil, false, nil
	}
	if task.Status == column {
		return task, false, nil
	}
	return d.kanban.SetStatus(ctx, task.ID, column)
}

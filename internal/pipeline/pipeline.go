// Package pipeline implements the optimistic mutation pipeline: user actions
// apply to the local view-model immediately, a toast with a grace-period
// timer is kept per task, and the corresponding remote call fires only when
// the timer expires. Undoing before expiry reverses the local mutation and
// no remote call is ever made.
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dotodo/todos/internal/models"
	"github.com/dotodo/todos/internal/state"
)

// Kind identifies the optimistic action a toast belongs to
type Kind string

const (
	KindCompleted     Kind = "completed"
	KindCompletedUndo Kind = "completed-undo"
	KindDeleted       Kind = "deleted"
)

// RemoteCall performs the deferred persistence call for a toast
type RemoteCall func(ctx context.Context) error

// Toast is the visible record of a pending optimistic action. Task holds the
// pre-mutation snapshot; PrevList records which list the task occupied before
// the action (needed to reverse a deletion).
type Toast struct {
	TaskID   int
	Task     models.Task
	Kind     Kind
	PrevList state.List
	Deadline time.Time
}

// toastEntry is a live toast plus its timer and deferred call
type toastEntry struct {
	Toast
	timer  Timer
	remote RemoteCall
	seq    int
}

// Pipeline owns the per-task toast state machine: Stable -> Pending(kind) ->
// Stable, where Pending resolves either by timer expiry (remote call fires)
// or by undo (local reversal, no remote call). At most one toast is live per
// task id; scheduling a new action on a pending task supersedes the old
// toast and its timer never fires.
type Pipeline struct {
	mu     sync.Mutex
	lists  *state.Lists
	clock  Clock
	grace  time.Duration
	toasts map[int]*toastEntry
	seq    int

	// onRemoteError is invoked (on the expiry goroutine) when a deferred
	// call fails. Local state is not rolled back; the UI stays ahead of the
	// server until the next refresh.
	onRemoteError func(Toast, error)
}

// Config configures a Pipeline
type Config struct {
	Lists *state.Lists
	Clock Clock
	Grace time.Duration

	// OnRemoteError receives failures from deferred remote calls.
	// Defaults to logging a warning.
	OnRemoteError func(Toast, error)
}

// New creates a pipeline over the given view-model
func New(cfg Config) *Pipeline {
	if cfg.Clock == nil {
		cfg.Clock = RealClock()
	}
	if cfg.OnRemoteError == nil {
		cfg.OnRemoteError = func(t Toast, err error) {
			slog.Warn("deferred remote call failed",
				"task_id", t.TaskID, "kind", t.Kind, "error", err)
		}
	}
	return &Pipeline{
		lists:         cfg.Lists,
		clock:         cfg.Clock,
		grace:         cfg.Grace,
		toasts:        make(map[int]*toastEntry),
		onRemoteError: cfg.OnRemoteError,
	}
}

// Complete marks a task done: it moves active -> completed instantly and
// schedules the persistence call for after the grace period.
func (p *Pipeline) Complete(task models.Task, remote RemoteCall) {
	p.applyAndSchedule(task, KindCompleted, remote)
}

// Uncomplete moves a completed task back to active
func (p *Pipeline) Uncomplete(task models.Task, remote RemoteCall) {
	p.applyAndSchedule(task, KindCompletedUndo, remote)
}

// Delete removes a task from its current list
func (p *Pipeline) Delete(task models.Task, remote RemoteCall) {
	p.applyAndSchedule(task, KindDeleted, remote)
}

// applyAndSchedule is the single entry point for optimistic actions:
// cancel any pending toast for the task, mutate the lists synchronously,
// record the pre-mutation snapshot, and arm the grace timer.
func (p *Pipeline) applyAndSchedule(task models.Task, kind Kind, remote RemoteCall) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Supersession: a new action on a pending task replaces the old toast,
	// and the old timer must never fire afterwards.
	p.cancelLocked(task.ID)

	snapshot, prevList, found := p.lists.Remove(task.ID)
	if !found {
		// Task is not in the view-model; use the caller's copy so undo
		// still has a snapshot to restore.
		snapshot = task
		prevList = state.ListActive
	}

	switch kind {
	case KindCompleted:
		moved := snapshot
		moved.IsDone = true
		p.lists.Append(state.ListCompleted, moved)
	case KindCompletedUndo:
		moved := snapshot
		moved.IsDone = false
		p.lists.Append(state.ListActive, moved)
	case KindDeleted:
		// Removal is the whole forward effect
	}

	p.seq++
	entry := &toastEntry{
		Toast: Toast{
			TaskID:   task.ID,
			Task:     snapshot,
			Kind:     kind,
			PrevList: prevList,
			Deadline: p.clock.Now().Add(p.grace),
		},
		remote: remote,
		seq:    p.seq,
	}

	seq := entry.seq
	entry.timer = p.clock.AfterFunc(p.grace, func() {
		p.expire(task.ID, seq)
	})
	p.toasts[task.ID] = entry
}

// expire commits a toast: the toast is removed first, then the remote call
// runs. The seq guard ignores a timer that lost a race with supersession.
func (p *Pipeline) expire(taskID, seq int) {
	p.mu.Lock()
	entry, ok := p.toasts[taskID]
	if !ok || entry.seq != seq {
		p.mu.Unlock()
		return
	}
	delete(p.toasts, taskID)
	p.mu.Unlock()

	if err := entry.remote(context.Background()); err != nil {
		p.onRemoteError(entry.Toast, err)
	}
}

// Undo cancels a pending toast and reverses its optimistic mutation from the
// recorded snapshot. No remote call is made. Calling Undo for a task with no
// live toast is a no-op.
func (p *Pipeline) Undo(taskID int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.toasts[taskID]
	if !ok {
		return
	}
	entry.timer.Stop()
	delete(p.toasts, taskID)

	switch entry.Kind {
	case KindCompleted:
		p.lists.Remove(taskID)
		restored := entry.Task
		restored.IsDone = false
		p.lists.Append(state.ListActive, restored)
	case KindCompletedUndo:
		p.lists.Remove(taskID)
		restored := entry.Task
		restored.IsDone = true
		p.lists.Append(state.ListCompleted, restored)
	case KindDeleted:
		p.lists.Append(entry.PrevList, entry.Task)
	}
}

// Pending reports whether the task has a live toast
func (p *Pipeline) Pending(taskID int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.toasts[taskID]
	return ok
}

// Toasts returns the live toasts in creation order, oldest first
func (p *Pipeline) Toasts() []Toast {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := make([]*toastEntry, 0, len(p.toasts))
	for _, e := range p.toasts {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	toasts := make([]Toast, len(entries))
	for i, e := range entries {
		toasts[i] = e.Toast
	}
	return toasts
}

// Newest returns the most recently created live toast, if any
func (p *Pipeline) Newest() (Toast, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var newest *toastEntry
	for _, e := range p.toasts {
		if newest == nil || e.seq > newest.seq {
			newest = e
		}
	}
	if newest == nil {
		return Toast{}, false
	}
	return newest.Toast, true
}

// Flush commits every pending toast immediately: timers are cancelled and
// the deferred calls run right away. Used on client shutdown so quitting
// does not silently drop actions the user let stand.
func (p *Pipeline) Flush(ctx context.Context) {
	p.mu.Lock()
	entries := make([]*toastEntry, 0, len(p.toasts))
	for _, e := range p.toasts {
		e.timer.Stop()
		entries = append(entries, e)
	}
	p.toasts = make(map[int]*toastEntry)
	p.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})
	for _, e := range entries {
		if err := e.remote(ctx); err != nil {
			p.onRemoteError(e.Toast, err)
		}
	}
}

// cancelLocked discards the live toast for a task (if any) and stops its
// timer without reversing or committing anything. Caller holds p.mu.
func (p *Pipeline) cancelLocked(taskID int) {
	if entry, ok := p.toasts[taskID]; ok {
		entry.timer.Stop()
		delete(p.toasts, taskID)
	}
}

// Package service wires the board stores behind an application-facing
// action surface. It owns the dispatcher, generates ids, and enforces the
// cross-store ordering rules a single store cannot see.
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/kanba/internal/board"
)

// Fallback text for entities created without any. Matches what the UI
// shows before the inline editor opens.
const (
	defaultLaneName = "New lane"
	defaultNoteTask = "New task"
)

// BoardService is the composition of both stores behind one dispatcher.
// All mutation goes through Dispatch; callers never touch the stores
// directly.
type BoardService struct {
	dispatcher *board.Dispatcher
	notes      *board.NoteStore
	lanes      *board.LaneStore
	noteEditor board.Editor
	laneEditor board.Editor
	listeners  []func(board.Snapshot)
}

// NewBoard hydrates stores from a persisted snapshot and registers them
// with a fresh dispatcher. logf receives handler errors; nil disables it.
func NewBoard(initial board.Snapshot, logf func(format string, args ...any)) (*BoardService, error) {
	notes := board.NewNoteStore(initial.Notes)
	lanes := board.NewLaneStore(initial.Lanes)
	d := board.NewDispatcher(logf)
	if err := d.Register("notes", notes.Reduce); err != nil {
		return nil, fmt.Errorf("wire note store: %w", err)
	}
	if err := d.Register("lanes", lanes.Reduce); err != nil {
		return nil, fmt.Errorf("wire lane store: %w", err)
	}

	s := &BoardService{
		dispatcher: d,
		notes:      notes,
		lanes:      lanes,
		noteEditor: board.NoteEditor(d),
		laneEditor: board.LaneEditor(d),
	}
	notes.Subscribe(func([]board.Note) { s.changed() })
	lanes.Subscribe(func([]board.Lane) { s.changed() })
	return s, nil
}

// OnChange registers fn to receive the combined snapshot after every
// settled store mutation. The persistence bridge hangs off this.
func (s *BoardService) OnChange(fn func(board.Snapshot)) {
	s.listeners = append(s.listeners, fn)
}

func (s *BoardService) changed() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.listeners {
		fn(snap)
	}
}

// Snapshot returns the combined board state.
func (s *BoardService) Snapshot() board.Snapshot {
	return board.Snapshot{Notes: s.notes.Snapshot(), Lanes: s.lanes.Snapshot()}
}

// LaneNotes resolves the notes belonging to laneID, in note-store order.
func (s *BoardService) LaneNotes(laneID string) []board.Note {
	lane, ok := s.lanes.Get(laneID)
	if !ok {
		return nil
	}
	return board.ResolveLaneNotes(lane, s.notes)
}

// CreateLane adds an empty lane and returns its generated id. A blank
// name falls back to a placeholder the user is expected to rename.
func (s *BoardService) CreateLane(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultLaneName
	}
	id := uuid.NewString()
	if err := s.dispatcher.Dispatch(board.CreateLane{Lane: board.Lane{ID: id, Name: name}}); err != nil {
		return "", err
	}
	return id, nil
}

// CreateNote adds a note and attaches it to laneID, returning the new
// note id. The lane is checked first so a failed attach cannot strand a
// fresh orphan.
func (s *BoardService) CreateNote(laneID, task string) (string, error) {
	if _, ok := s.lanes.Get(laneID); !ok {
		return "", fmt.Errorf("create note in lane %q: %w", laneID, board.ErrNotFound)
	}
	task = strings.TrimSpace(task)
	if task == "" {
		task = defaultNoteTask
	}
	id := uuid.NewString()
	if err := s.dispatcher.Dispatch(board.CreateNote{ID: id, Task: task}); err != nil {
		return "", err
	}
	if err := s.dispatcher.Dispatch(board.AttachNote{LaneID: laneID, NoteID: id}); err != nil {
		return "", err
	}
	return id, nil
}

// MoveNote transfers ownership of noteID to laneID. Unknown notes are
// rejected here: the lane store tracks opaque ids and cannot tell a
// stale id from a live one.
func (s *BoardService) MoveNote(laneID, noteID string) error {
	if _, ok := s.notes.Get(noteID); !ok {
		return fmt.Errorf("move note %q: %w", noteID, board.ErrNotFound)
	}
	return s.dispatcher.Dispatch(board.AttachNote{LaneID: laneID, NoteID: noteID})
}

// DetachNote removes noteID from laneID without deleting it.
func (s *BoardService) DetachNote(laneID, noteID string) error {
	return s.dispatcher.Dispatch(board.DetachNote{LaneID: laneID, NoteID: noteID})
}

// DeleteNote detaches the note from its owning lane, then deletes it.
// The order matters: done the other way round a subscriber could resolve
// a lane against an already-deleted id between the two dispatches.
func (s *BoardService) DeleteNote(noteID string) error {
	if owner, ok := s.lanes.Owner(noteID); ok {
		if err := s.dispatcher.Dispatch(board.DetachNote{LaneID: owner, NoteID: noteID}); err != nil {
			return err
		}
	}
	return s.dispatcher.Dispatch(board.DeleteNote{ID: noteID})
}

// DeleteLane removes the lane only. Its notes stay behind as orphans;
// PruneOrphans exists for users who want them gone.
func (s *BoardService) DeleteLane(laneID string) error {
	return s.dispatcher.Dispatch(board.DeleteLane{ID: laneID})
}

// PruneOrphans deletes every note no lane references and reports how many
// went. This is the manual cleanup for the deliberate non-cascading lane
// delete.
func (s *BoardService) PruneOrphans() (int, error) {
	pruned := 0
	for _, n := range s.notes.Snapshot() {
		if _, owned := s.lanes.Owner(n.ID); owned {
			continue
		}
		if err := s.dispatcher.Dispatch(board.DeleteNote{ID: n.ID}); err != nil {
			return pruned, err
		}
		pruned++
	}
	return pruned, nil
}

// BeginNoteEdit / FinishNoteEdit drive the note editing toggle.
func (s *BoardService) BeginNoteEdit(id string) error { return s.noteEditor.Begin(id) }
func (s *BoardService) FinishNoteEdit(id, text string) error {
	return s.noteEditor.Finish(id, text)
}

// BeginLaneEdit / FinishLaneEdit drive the lane renaming toggle.
func (s *BoardService) BeginLaneEdit(id string) error { return s.laneEditor.Begin(id) }
func (s *BoardService) FinishLaneEdit(id, text string) error {
	return s.laneEditor.Finish(id, text)
}

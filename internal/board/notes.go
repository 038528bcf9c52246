package board

import "fmt"

// NoteStore owns note content. Order is insertion order; it is the order
// GetByIDs and snapshots report, independent of any lane's NoteIDs order.
type NoteStore struct {
	notes []Note
	subs  []func([]Note)
}

// NewNoteStore builds a store seeded with initial notes (the persisted
// snapshot on startup). Editing always starts false.
func NewNoteStore(initial []Note) *NoteStore {
	s := &NoteStore{notes: make([]Note, 0, len(initial))}
	for _, n := range initial {
		n.Editing = false
		s.notes = append(s.notes, n)
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every settled
// mutation. Delivery is synchronous, inside the dispatch.
func (s *NoteStore) Subscribe(fn func([]Note)) {
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of all notes in store order.
func (s *NoteStore) Snapshot() []Note {
	return append([]Note(nil), s.notes...)
}

// GetByIDs returns the notes matching ids, in store order (it filters,
// it does not reorder to match ids). Unknown ids are silently dropped.
func (s *NoteStore) GetByIDs(ids []string) []Note {
	if len(ids) == 0 {
		return []Note{}
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]Note, 0, len(ids))
	for _, n := range s.notes {
		if want[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// Get returns the note with the given id, or false.
func (s *NoteStore) Get(id string) (Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Reduce applies note actions. Actions for other stores fall through
// untouched so a single dispatcher can fan out to every store.
func (s *NoteStore) Reduce(a Action) error {
	switch a := a.(type) {
	case CreateNote:
		return s.create(a.ID, a.Task)
	case UpdateNote:
		s.update(a.ID, a.Fields)
	case DeleteNote:
		s.delete(a.ID)
	}
	return nil
}

func (s *NoteStore) create(id, task string) error {
	for _, n := range s.notes {
		if n.ID == id {
			return fmt.Errorf("create note %q: %w", id, ErrDuplicateID)
		}
	}
	s.notes = append(s.notes, Note{ID: id, Task: task})
	s.publish()
	return nil
}

// update merges fields into the matching note. Unknown id is a no-op.
func (s *NoteStore) update(id string, f NoteFields) {
	for i, n := range s.notes {
		if n.ID != id {
			continue
		}
		if f.Task != nil {
			n.Task = *f.Task
		}
		if f.Editing != nil {
			n.Editing = *f.Editing
		}
		s.notes[i] = n
		s.publish()
		return
	}
}

// delete removes the matching note. Unknown id is a no-op.
func (s *NoteStore) delete(id string) {
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.publish()
			return
		}
	}
}

func (s *NoteStore) publish() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

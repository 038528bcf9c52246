package board

import "fmt"

// LaneStore owns the ordered lane list and the lane->note relation. It
// never looks inside the NoteStore: the relation is by opaque id, and
// resolution happens in ResolveLaneNotes.
type LaneStore struct {
	lanes []Lane
	subs  []func([]Lane)
}

// NewLaneStore builds a store seeded with initial lanes. NoteIDs slices
// are copied and deduplicated defensively; Editing always starts false.
func NewLaneStore(initial []Lane) *LaneStore {
	s := &LaneStore{lanes: make([]Lane, 0, len(initial))}
	for _, l := range initial {
		c := l.clone()
		c.Editing = false
		c.NoteIDs = dedup(c.NoteIDs)
		s.lanes = append(s.lanes, c)
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every settled
// mutation. Delivery is synchronous, inside the dispatch.
func (s *LaneStore) Subscribe(fn func([]Lane)) {
	s.subs = append(s.subs, fn)
}

// Snapshot returns a deep copy of all lanes in display order.
func (s *LaneStore) Snapshot() []Lane {
	out := make([]Lane, 0, len(s.lanes))
	for _, l := range s.lanes {
		out = append(out, l.clone())
	}
	return out
}

// Get returns a copy of the lane with the given id, or false.
func (s *LaneStore) Get(id string) (Lane, bool) {
	for _, l := range s.lanes {
		if l.ID == id {
			return l.clone(), true
		}
	}
	return Lane{}, false
}

// Owner returns the id of the lane currently referencing noteID, or false
// when no lane does.
func (s *LaneStore) Owner(noteID string) (string, bool) {
	for _, l := range s.lanes {
		if l.contains(noteID) {
			return l.ID, true
		}
	}
	return "", false
}

// Reduce applies lane actions. Actions for other stores fall through
// untouched.
func (s *LaneStore) Reduce(a Action) error {
	switch a := a.(type) {
	case CreateLane:
		return s.create(a.Lane)
	case UpdateLane:
		s.update(a.ID, a.Fields)
	case DeleteLane:
		s.delete(a.ID)
	case AttachNote:
		return s.attach(a.LaneID, a.NoteID)
	case DetachNote:
		s.detach(a.LaneID, a.NoteID)
	}
	return nil
}

func (s *LaneStore) create(lane Lane) error {
	for _, l := range s.lanes {
		if l.ID == lane.ID {
			return fmt.Errorf("create lane %q: %w", lane.ID, ErrDuplicateID)
		}
	}
	c := lane.clone()
	if c.NoteIDs == nil {
		c.NoteIDs = []string{}
	}
	c.NoteIDs = dedup(c.NoteIDs)
	s.lanes = append(s.lanes, c)
	s.publish()
	return nil
}

// update merges fields into the matching lane. Unknown id is a no-op.
func (s *LaneStore) update(id string, f LaneFields) {
	for i, l := range s.lanes {
		if l.ID != id {
			continue
		}
		c := l.clone()
		if f.Name != nil {
			c.Name = *f.Name
		}
		if f.Editing != nil {
			c.Editing = *f.Editing
		}
		s.lanes[i] = c
		s.publish()
		return
	}
}

// delete removes the lane only. Notes it referenced survive in the note
// store; that gap is deliberate and covered by the service layer's delete
// path, which detaches before deleting notes it actually wants gone.
func (s *LaneStore) delete(id string) {
	for i, l := range s.lanes {
		if l.ID == id {
			s.lanes = append(s.lanes[:i], s.lanes[i+1:]...)
			s.publish()
			return
		}
	}
}

// attach moves ownership of noteID to laneID, appending at the end of the
// destination. The new lane list is built in full before it replaces the
// old one, so no subscriber ever observes the note in two lanes (or zero
// lanes) mid-move. A missing destination leaves every lane untouched.
func (s *LaneStore) attach(laneID, noteID string) error {
	dest := -1
	for i, l := range s.lanes {
		if l.ID == laneID {
			dest = i
			break
		}
	}
	if dest < 0 {
		return fmt.Errorf("attach note %q to lane %q: %w", noteID, laneID, ErrNotFound)
	}

	next := make([]Lane, len(s.lanes))
	for i, l := range s.lanes {
		c := l.clone()
		c.NoteIDs = removeID(c.NoteIDs, noteID)
		next[i] = c
	}
	next[dest].NoteIDs = append(next[dest].NoteIDs, noteID)

	s.lanes = next
	s.publish()
	return nil
}

// detach removes noteID from the named lane only. Unknown lane id, or a
// lane that does not hold the note, is a no-op.
func (s *LaneStore) detach(laneID, noteID string) {
	for i, l := range s.lanes {
		if l.ID != laneID {
			continue
		}
		if !l.contains(noteID) {
			return
		}
		c := l.clone()
		c.NoteIDs = removeID(c.NoteIDs, noteID)
		s.lanes[i] = c
		s.publish()
		return
	}
}

func (s *LaneStore) publish() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, v := range ids {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Package board holds the in-memory relational model behind the Kanba UI:
// a set of lanes, each referencing an ordered list of notes by id. Stores
// are plain instances constructed by the composition root; all mutation
// flows through typed actions delivered by a Dispatcher, and every settled
// mutation publishes an immutable snapshot to subscribers.
package board

// Note is a leaf content entity: a piece of task text plus a transient
// editing flag used by the presentation layer.
type Note struct {
	ID      string
	Task    string
	Editing bool
}

// Lane is an ordered container referencing zero or more notes by id.
// NoteIDs order is display order. A note id appears in at most one lane
// at any time; the LaneStore enforces that on attach.
type Lane struct {
	ID      string
	Name    string
	Editing bool
	NoteIDs []string
}

func (l Lane) clone() Lane {
	c := l
	c.NoteIDs = append([]string(nil), l.NoteIDs...)
	return c
}

// contains reports whether the lane currently references noteID.
func (l Lane) contains(noteID string) bool {
	for _, id := range l.NoteIDs {
		if id == noteID {
			return true
		}
	}
	return false
}

// Snapshot is the full board state at a point in time. Values are copies;
// mutating a snapshot never affects store state.
type Snapshot struct {
	Notes []Note
	Lanes []Lane
}

// NoteFields carries a partial update for a note. Nil fields are left
// unchanged.
type NoteFields struct {
	Task    *string
	Editing *bool
}

// LaneFields carries a partial update for a lane. Nil fields are left
// unchanged.
type LaneFields struct {
	Name    *string
	Editing *bool
}

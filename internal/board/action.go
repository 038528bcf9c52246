package board

// Action is the closed set of board mutations. The unexported marker keeps
// the set sealed: stores can exhaustively switch on the variants below and
// ignore anything else.
type Action interface {
	isAction()
}

// CreateNote adds a note with caller-supplied id and task text.
type CreateNote struct {
	ID   string
	Task string
}

// UpdateNote merges the non-nil fields into the matching note.
type UpdateNote struct {
	ID     string
	Fields NoteFields
}

// DeleteNote removes the matching note. Lane references are not touched;
// callers that care must detach in the same dispatch sequence first.
type DeleteNote struct {
	ID string
}

// CreateLane adds a lane. A nil NoteIDs defaults to an empty sequence.
type CreateLane struct {
	Lane Lane
}

// UpdateLane merges the non-nil fields into the matching lane.
type UpdateLane struct {
	ID     string
	Fields LaneFields
}

// DeleteLane removes the matching lane only. Notes it referenced stay in
// the note store (orphan cleanup is the caller's problem).
type DeleteLane struct {
	ID string
}

// AttachNote moves ownership of NoteID to LaneID, appending at the end.
// Any other lane holding the id gives it up in the same pass.
type AttachNote struct {
	LaneID string
	NoteID string
}

// DetachNote removes NoteID from LaneID only.
type DetachNote struct {
	LaneID string
	NoteID string
}

func (CreateNote) isAction() {}
func (UpdateNote) isAction() {}
func (DeleteNote) isAction() {}
func (CreateLane) isAction() {}
func (UpdateLane) isAction() {}
func (DeleteLane) isAction() {}
func (AttachNote) isAction() {}
func (DetachNote) isAction() {}

package board

// ResolveLaneNotes derives the notes belonging to a lane: a pure lookup of
// lane.NoteIDs against the note store, in note-store order. Nothing is
// cached; callers re-resolve after each settled mutation. The result never
// contains a note absent from the store (unknown ids drop out), and
// exclusive ownership is already guaranteed upstream by attach.
func ResolveLaneNotes(lane Lane, notes *NoteStore) []Note {
	return notes.GetByIDs(lane.NoteIDs)
}

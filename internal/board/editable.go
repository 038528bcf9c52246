package board

import "strings"

// Editor drives the shared viewing/editing toggle. Notes edit their task
// text, lanes edit their name; everything else about the flow is
// identical, so the machine is written once and parameterized by the
// action it emits.
type Editor struct {
	dispatch func(Action) error
	// action builds the partial update for one entity kind: value is the
	// new text (nil keeps the current text), editing is the flag to set.
	action func(id string, value *string, editing bool) Action
}

// NoteEditor edits note task text through the dispatcher.
func NoteEditor(d *Dispatcher) Editor {
	return Editor{
		dispatch: d.Dispatch,
		action: func(id string, value *string, editing bool) Action {
			return UpdateNote{ID: id, Fields: NoteFields{Task: value, Editing: &editing}}
		},
	}
}

// LaneEditor edits lane names through the dispatcher.
func LaneEditor(d *Dispatcher) Editor {
	return Editor{
		dispatch: d.Dispatch,
		action: func(id string, value *string, editing bool) Action {
			return UpdateLane{ID: id, Fields: LaneFields{Name: value, Editing: &editing}}
		},
	}
}

// Begin moves the entity from viewing to editing.
func (e Editor) Begin(id string) error {
	return e.dispatch(e.action(id, nil, true))
}

// Finish moves the entity back to viewing. Blank (all-whitespace) text is
// not an error: the old value is kept and only the editing flag clears.
// Otherwise the new text and the cleared flag land in one update.
func (e Editor) Finish(id, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return e.dispatch(e.action(id, nil, false))
	}
	return e.dispatch(e.action(id, &trimmed, false))
}

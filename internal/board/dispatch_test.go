package board

import (
	"errors"
	"fmt"
	"testing"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewDispatcher(nil)
	var seen []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		if err := d.Register(name, func(Action) error {
			seen = append(seen, name)
			return nil
		}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	if err := d.Dispatch(DeleteNote{ID: "x"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("delivered to %d handlers, want 3", len(seen))
	}
}

func TestDispatcherRejectsDuplicateNameAndUnknownDep(t *testing.T) {
	d := NewDispatcher(nil)
	if err := d.Register("notes", func(Action) error { return nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := d.Register("notes", func(Action) error { return nil }); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate register: got %v, want ErrDuplicateID", err)
	}
	if err := d.Register("lanes", func(Action) error { return nil }, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown dep: got %v, want ErrNotFound", err)
	}
}

func TestDispatcherDependenciesSettleFirst(t *testing.T) {
	d := NewDispatcher(nil)
	var order []string
	record := func(name string) Handler {
		return func(Action) error {
			order = append(order, name)
			return nil
		}
	}
	// Registered out of dependency order on purpose.
	if err := d.Register("notes", record("notes")); err != nil {
		t.Fatalf("register notes: %v", err)
	}
	if err := d.Register("persist", record("persist"), "notes"); err != nil {
		t.Fatalf("register persist: %v", err)
	}
	if err := d.Register("lanes", record("lanes")); err != nil {
		t.Fatalf("register lanes: %v", err)
	}

	if err := d.Dispatch(DeleteNote{ID: "x"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	pos := map[string]int{}
	for i, n := range order {
		pos[n] = i
	}
	if pos["persist"] < pos["notes"] {
		t.Fatalf("persist ran before its dependency notes: %v", order)
	}
}

func TestDispatcherReturnsFirstErrorButRunsEveryone(t *testing.T) {
	d := NewDispatcher(nil)
	boom := fmt.Errorf("boom: %w", ErrNotFound)
	ran := 0
	if err := d.Register("failing", func(Action) error { ran++; return boom }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := d.Register("after", func(Action) error { ran++; return nil }); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := d.Dispatch(DeleteNote{ID: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("dispatch error = %v, want wrapped ErrNotFound", err)
	}
	if ran != 2 {
		t.Fatalf("%d handlers ran, want 2", ran)
	}

	// A failed dispatch must not poison the next one.
	if err := d.Dispatch(UpdateNote{ID: "y"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second dispatch error = %v, want same handler failure", err)
	}
}

func TestDispatcherRejectsReentrantDispatch(t *testing.T) {
	d := NewDispatcher(nil)
	var inner error
	if err := d.Register("reentrant", func(a Action) error {
		if _, ok := a.(CreateNote); ok {
			inner = d.Dispatch(DeleteNote{ID: "x"})
		}
		return nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := d.Dispatch(CreateNote{ID: "n1"}); err != nil {
		t.Fatalf("outer dispatch: %v", err)
	}
	if inner == nil {
		t.Fatal("nested dispatch succeeded, want rejection")
	}
}

func TestDispatcherLogsHandlerErrors(t *testing.T) {
	var logged []string
	d := NewDispatcher(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})
	if err := d.Register("failing", func(Action) error { return ErrNotFound }); err != nil {
		t.Fatalf("register: %v", err)
	}
	_ = d.Dispatch(DeleteNote{ID: "x"})
	if len(logged) != 1 {
		t.Fatalf("logged %d lines, want 1", len(logged))
	}
}

func TestDispatcherWiresBothStores(t *testing.T) {
	notes := NewNoteStore(nil)
	lanes := NewLaneStore(nil)
	d := NewDispatcher(nil)
	if err := d.Register("notes", notes.Reduce); err != nil {
		t.Fatalf("register notes: %v", err)
	}
	if err := d.Register("lanes", lanes.Reduce); err != nil {
		t.Fatalf("register lanes: %v", err)
	}

	steps := []Action{
		CreateLane{Lane: Lane{ID: "l1", Name: "Todo"}},
		CreateNote{ID: "n1", Task: "write tests"},
		AttachNote{LaneID: "l1", NoteID: "n1"},
	}
	for _, a := range steps {
		if err := d.Dispatch(a); err != nil {
			t.Fatalf("dispatch %T: %v", a, err)
		}
	}

	l, _ := lanes.Get("l1")
	got := ResolveLaneNotes(l, notes)
	if len(got) != 1 || got[0].Task != "write tests" {
		t.Fatalf("resolved %+v, want the attached note", got)
	}
}

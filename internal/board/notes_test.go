package board

import (
	"errors"
	"testing"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestNoteStoreCreateRejectsDuplicateID(t *testing.T) {
	s := NewNoteStore(nil)
	if err := s.Reduce(CreateNote{ID: "n1", Task: "first"}); err != nil {
		t.Fatalf("create n1: %v", err)
	}
	err := s.Reduce(CreateNote{ID: "n1", Task: "again"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicateID", err)
	}
	if got := len(s.Snapshot()); got != 1 {
		t.Fatalf("store holds %d notes after rejected create, want 1", got)
	}
}

func TestNoteStoreUpdateMergesPartialFields(t *testing.T) {
	tests := []struct {
		name        string
		fields      NoteFields
		wantTask    string
		wantEditing bool
	}{
		{name: "task_only", fields: NoteFields{Task: strp("changed")}, wantTask: "changed", wantEditing: false},
		{name: "editing_only", fields: NoteFields{Editing: boolp(true)}, wantTask: "original", wantEditing: true},
		{name: "both", fields: NoteFields{Task: strp("changed"), Editing: boolp(true)}, wantTask: "changed", wantEditing: true},
		{name: "neither", fields: NoteFields{}, wantTask: "original", wantEditing: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewNoteStore([]Note{{ID: "n1", Task: "original"}})
			if err := s.Reduce(UpdateNote{ID: "n1", Fields: tt.fields}); err != nil {
				t.Fatalf("update: %v", err)
			}
			n, ok := s.Get("n1")
			if !ok {
				t.Fatal("note n1 missing after update")
			}
			if n.Task != tt.wantTask || n.Editing != tt.wantEditing {
				t.Fatalf("got {%q %v}, want {%q %v}", n.Task, n.Editing, tt.wantTask, tt.wantEditing)
			}
		})
	}
}

func TestNoteStoreUpdateAndDeleteUnknownIDAreNoOps(t *testing.T) {
	s := NewNoteStore([]Note{{ID: "n1", Task: "keep"}})
	var published int
	s.Subscribe(func([]Note) { published++ })

	if err := s.Reduce(UpdateNote{ID: "ghost", Fields: NoteFields{Task: strp("x")}}); err != nil {
		t.Fatalf("update unknown: %v", err)
	}
	if err := s.Reduce(DeleteNote{ID: "ghost"}); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if published != 0 {
		t.Fatalf("no-op mutations published %d snapshots, want 0", published)
	}
	if _, ok := s.Get("n1"); !ok {
		t.Fatal("n1 disappeared")
	}
}

func TestNoteStoreGetByIDsFiltersInStoreOrder(t *testing.T) {
	s := NewNoteStore([]Note{
		{ID: "a", Task: "one"},
		{ID: "b", Task: "two"},
		{ID: "c", Task: "three"},
	})

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "empty", ids: []string{}, want: []string{}},
		{name: "reversed_request_keeps_store_order", ids: []string{"c", "a"}, want: []string{"a", "c"}},
		{name: "unknown_dropped", ids: []string{"a", "zz", "b"}, want: []string{"a", "b"}},
		{name: "all_unknown", ids: []string{"x", "y"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.GetByIDs(tt.ids)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d notes, want %d", len(got), len(tt.want))
			}
			for i, n := range got {
				if n.ID != tt.want[i] {
					t.Fatalf("position %d: got %q, want %q", i, n.ID, tt.want[i])
				}
			}
		})
	}
}

func TestNoteStoreSnapshotIsIsolated(t *testing.T) {
	s := NewNoteStore([]Note{{ID: "n1", Task: "original"}})
	snap := s.Snapshot()
	snap[0].Task = "mutated"
	n, _ := s.Get("n1")
	if n.Task != "original" {
		t.Fatalf("store leaked snapshot mutation: %q", n.Task)
	}
}

func TestNoteStorePublishesAfterEachSettledMutation(t *testing.T) {
	s := NewNoteStore(nil)
	var got [][]Note
	s.Subscribe(func(snap []Note) { got = append(got, snap) })

	if err := s.Reduce(CreateNote{ID: "n1", Task: "a"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Reduce(UpdateNote{ID: "n1", Fields: NoteFields{Task: strp("b")}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Reduce(DeleteNote{ID: "n1"}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("subscriber saw %d snapshots, want 3", len(got))
	}
	if len(got[0]) != 1 || got[0][0].Task != "a" {
		t.Fatalf("first snapshot wrong: %+v", got[0])
	}
	if got[1][0].Task != "b" {
		t.Fatalf("second snapshot wrong: %+v", got[1])
	}
	if len(got[2]) != 0 {
		t.Fatalf("third snapshot wrong: %+v", got[2])
	}
}

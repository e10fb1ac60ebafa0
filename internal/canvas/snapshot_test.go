package canvas

import (
	"testing"

	"github.com/stockpredictor/backend/internal/errs"
)

func TestSaveRejectsBlankName(t *testing.T) {
	m := NewModel()
	m.Insert("chart", 0, 0)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := m.Save(name)
		if err == nil {
			t.Fatalf("Save(%q) succeeded, want validation error", name)
		}
		if _, ok := err.(*errs.ValidationError); !ok {
			t.Fatalf("Save(%q) returned %T, want *errs.ValidationError", name, err)
		}
	}
	if m.Len() != 1 {
		t.Fatalf("rejected save altered the model")
	}
}

func TestSaveTrimsName(t *testing.T) {
	m := NewModel()
	snap, err := m.Save("  My Model  ")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if snap.Name != "My Model" {
		t.Fatalf("name = %q, want trimmed", snap.Name)
	}
	if snap.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}
}

func TestSnapshotIndependentOfLaterEdits(t *testing.T) {
	m := NewModel()
	a := m.Insert("chart", 10, 10)
	m.Insert("quotes", 300, 10)

	snap, err := m.Save("layout")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if len(snap.Widgets) != 2 {
		t.Fatalf("snapshot has %d widgets, want 2", len(snap.Widgets))
	}

	// Mutate the live canvas every way possible.
	m.Move(a.InstanceID, 999, 999)
	m.Resize(a.InstanceID, 500, 400)
	m.Insert("order-book", 0, 0)
	m.Remove(a.InstanceID)

	if len(snap.Widgets) != 2 {
		t.Fatalf("snapshot widget count changed after live edits")
	}
	if snap.Widgets[0].X != 10 || snap.Widgets[0].Y != 10 {
		t.Fatalf("snapshot geometry changed after live edits: %+v", snap.Widgets[0])
	}
	if snap.Widgets[0].Width != DefaultWidth || snap.Widgets[0].Height != DefaultHeight {
		t.Fatalf("snapshot size changed after live edits: %+v", snap.Widgets[0])
	}
}

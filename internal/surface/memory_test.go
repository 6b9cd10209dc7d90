package surface

import (
	"testing"

	"ghost-dashboard/internal/render"
)

var _ render.Surface = (*Memory)(nil)

func TestMemorySnapshotIsACopy(t *testing.T) {
	m := NewMemory()
	m.SetText("grandTotal", "198")
	m.SetRows("orderTable", []string{"a", "b"})
	m.SetMarkerVisible("Medan", true)

	snap := m.Snapshot()
	m.SetText("grandTotal", "26")
	m.SetMarkerVisible("Medan", false)

	if snap.Texts["grandTotal"] != "198" {
		t.Fatalf("snapshot text changed: %q", snap.Texts["grandTotal"])
	}
	if !snap.Markers["Medan"] {
		t.Fatalf("snapshot marker changed")
	}
	if rows := snap.Tables["orderTable"].([]string); len(rows) != 2 {
		t.Fatalf("rows = %v", rows)
	}

	latest := m.Snapshot()
	if latest.Texts["grandTotal"] != "26" || latest.Markers["Medan"] {
		t.Fatalf("latest snapshot = %+v", latest)
	}
}

package surface

import (
	"sync"
)

// Memory keeps the latest display state written by the renderers so it can be
// served to a client
type Memory struct {
	mu      sync.RWMutex
	texts   map[string]string
	tables  map[string]any
	markers map[string]bool
}

// NewMemory creates an empty surface
func NewMemory() *Memory {
	return &Memory{
		texts:   make(map[string]string),
		tables:  make(map[string]any),
		markers: make(map[string]bool),
	}
}

// SetText sets the text of an element
func (m *Memory) SetText(elementKey, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[elementKey] = value
}

// SetRows replaces the rows of a table
func (m *Memory) SetRows(tableKey string, rows any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[tableKey] = rows
}

// SetMarkerVisible shows or hides a map marker and its label
func (m *Memory) SetMarkerVisible(markerKey string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers[markerKey] = visible
}

// Snapshot is a copy of the surface state
type Snapshot struct {
	Texts   map[string]string
	Tables  map[string]any
	Markers map[string]bool
}

// Snapshot copies the current state. Row slices are shared; renderers always
// replace them rather than modify them.
func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		Texts:   make(map[string]string, len(m.texts)),
		Tables:  make(map[string]any, len(m.tables)),
		Markers: make(map[string]bool, len(m.markers)),
	}
	for k, v := range m.texts {
		snap.Texts[k] = v
	}
	for k, v := range m.tables {
		snap.Tables[k] = v
	}
	for k, v := range m.markers {
		snap.Markers[k] = v
	}
	return snap
}

package canvas

import (
	"fmt"
	"time"
)

// Geometry limits for placed widgets. A widget below the minimum size loses
// its header bar and becomes unclickable, so Resize clamps rather than errors.
const (
	DefaultWidth  = 200.0
	DefaultHeight = 150.0
	MinWidth      = 100.0
	MinHeight     = 80.0
)

// PlacedWidget is one positioned instance of a WidgetType on the canvas.
type PlacedWidget struct {
	InstanceID string  `json:"instanceId" firestore:"instanceId"`
	TypeID     string  `json:"typeId" firestore:"typeId"`
	X          float64 `json:"x" firestore:"x"`
	Y          float64 `json:"y" firestore:"y"`
	Width      float64 `json:"width" firestore:"width"`
	Height     float64 `json:"height" firestore:"height"`
	ZIndex     int     `json:"zIndex" firestore:"zIndex"`
}

// Model holds the authoritative widget collection for one editing session.
// All mutations are synchronous and keep the geometry invariants: x,y >= 0,
// width >= MinWidth, height >= MinHeight, unique instance ids.
//
// Model is not safe for concurrent use; it belongs to a single event loop.
type Model struct {
	widgets  []PlacedWidget
	selected string
	seq      int
	now      func() time.Time
}

// NewModel returns an empty canvas model.
func NewModel() *Model {
	return &Model{now: time.Now}
}

// Insert places a new widget of the given type with the default size.
// Coordinates are clamped to the canvas origin. The new widget stacks above
// every existing one (zIndex = count+1) and gets a fresh instance id that is
// unique even for repeated drops of the same type within one millisecond.
func (m *Model) Insert(typeID string, x, y float64) PlacedWidget {
	m.seq++
	w := PlacedWidget{
		InstanceID: fmt.Sprintf("%s-%d-%d", typeID, m.now().UnixMilli(), m.seq),
		TypeID:     typeID,
		X:          max(0, x),
		Y:          max(0, y),
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		ZIndex:     len(m.widgets) + 1,
	}
	m.widgets = append(m.widgets, w)
	return w
}

// Move repositions a widget, clamping to non-negative coordinates. A stale
// instance id is a silent no-op: pointer-up events can race with deletion.
func (m *Model) Move(instanceID string, x, y float64) {
	for i := range m.widgets {
		if m.widgets[i].InstanceID == instanceID {
			m.widgets[i].X = max(0, x)
			m.widgets[i].Y = max(0, y)
			return
		}
	}
}

// Resize changes a widget's size, clamping to the minimums. Same stale-id
// tolerance as Move.
func (m *Model) Resize(instanceID string, width, height float64) {
	for i := range m.widgets {
		if m.widgets[i].InstanceID == instanceID {
			m.widgets[i].Width = max(MinWidth, width)
			m.widgets[i].Height = max(MinHeight, height)
			return
		}
	}
}

// Remove deletes a widget and clears the selection if it pointed at it.
// Surviving widgets keep their zIndex values; gaps are fine, only relative
// order matters.
func (m *Model) Remove(instanceID string) {
	for i := range m.widgets {
		if m.widgets[i].InstanceID == instanceID {
			m.widgets = append(m.widgets[:i], m.widgets[i+1:]...)
			if m.selected == instanceID {
				m.selected = ""
			}
			return
		}
	}
}

// Select marks a widget as the current selection. Selecting an unknown id
// (or "") selects nothing.
func (m *Model) Select(instanceID string) {
	if _, ok := m.Get(instanceID); ok {
		m.selected = instanceID
		return
	}
	m.selected = ""
}

// Selected returns the instance id of the selected widget, or "".
func (m *Model) Selected() string {
	return m.selected
}

// Get returns the widget with the given instance id.
func (m *Model) Get(instanceID string) (PlacedWidget, bool) {
	for _, w := range m.widgets {
		if w.InstanceID == instanceID {
			return w, true
		}
	}
	return PlacedWidget{}, false
}

// Widgets returns a copy of the widget collection in drop order.
func (m *Model) Widgets() []PlacedWidget {
	out := make([]PlacedWidget, len(m.widgets))
	copy(out, m.widgets)
	return out
}

// Len returns the number of placed widgets.
func (m *Model) Len() int {
	return len(m.widgets)
}

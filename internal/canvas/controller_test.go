package canvas

import (
	"testing"
)

func newTestController() (*Model, *Controller) {
	m := NewModel()
	return m, NewController(m, NewPalette())
}

// placeAt inserts a widget and positions it exactly, bypassing drop centering.
func placeAt(m *Model, typeID string, x, y float64) PlacedWidget {
	w := m.Insert(typeID, x, y)
	got, _ := m.Get(w.InstanceID)
	return got
}

func TestPaletteDropCentersWidgetOnDropPoint(t *testing.T) {
	m, c := newTestController()

	c.ArmPaletteDrag("chart")
	w, ok := c.Drop(300, 300)
	if !ok {
		t.Fatalf("armed drop did not insert")
	}
	if w.X != 200 || w.Y != 225 {
		t.Fatalf("drop at (300,300) placed widget at (%v,%v), want (200,225)", w.X, w.Y)
	}
	if m.Len() != 1 {
		t.Fatalf("model has %d widgets, want 1", m.Len())
	}
}

func TestDropWithoutArmedPaletteEntry(t *testing.T) {
	m, c := newTestController()

	if _, ok := c.Drop(100, 100); ok {
		t.Fatalf("drop succeeded without an armed palette entry")
	}
	c.ArmPaletteDrag("not-a-widget")
	if _, ok := c.Drop(100, 100); ok {
		t.Fatalf("drop succeeded for an unknown palette type")
	}
	if m.Len() != 0 {
		t.Fatalf("widgets inserted by rejected drops")
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50)

	// Press inside the body, 30 right and 40 below the origin.
	c.PointerDown(w.InstanceID, 80, 90)
	c.PointerMove(200, 200)

	got, _ := m.Get(w.InstanceID)
	if got.X != 170 || got.Y != 160 {
		t.Fatalf("widget jumped during drag: at (%v,%v), want (170,160)", got.X, got.Y)
	}
	if m.Selected() != w.InstanceID {
		t.Fatalf("pointer-down did not select the widget")
	}
}

func TestDragContinuesOutsideCanvasAndClamps(t *testing.T) {
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50)

	c.PointerDown(w.InstanceID, 60, 60)
	// Fast pointer movement far outside the canvas must still be applied.
	c.PointerMove(-5000, -5000)

	got, _ := m.Get(w.InstanceID)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("drag outside canvas not clamped to origin: (%v,%v)", got.X, got.Y)
	}

	c.PointerUp()
	// After pointer-up the interaction is over; further moves are ignored.
	c.PointerMove(400, 400)
	got, _ = m.Get(w.InstanceID)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("pointer-move after pointer-up still mutated the widget")
	}
}

func TestPointerDownOnRemovedWidgetIsNoOp(t *testing.T) {
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50)
	m.Remove(w.InstanceID)

	c.PointerDown(w.InstanceID, 60, 60)
	c.PointerMove(100, 100)
	c.PointerUp()

	if m.Len() != 0 {
		t.Fatalf("interaction on removed widget resurrected state")
	}
}

func TestResizeRequiresPriorSelection(t *testing.T) {
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50)

	// Not yet selected: a press on the edge starts a drag, not a resize.
	c.PointerDown(w.InstanceID, 52, 52)
	c.PointerMove(62, 62)
	got, _ := m.Get(w.InstanceID)
	if got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Fatalf("unselected edge press resized the widget: %+v", got)
	}
	if got.X != 60 || got.Y != 60 {
		t.Fatalf("unselected edge press did not drag: %+v", got)
	}
}

func TestDirectionAtCornersWinOverEdges(t *testing.T) {
	w := PlacedWidget{X: 50, Y: 50, Width: 200, Height: 150}

	cases := []struct {
		px, py float64
		want   Direction
	}{
		{52, 52, DirNorthWest},
		{248, 52, DirNorthEast},
		{52, 198, DirSouthWest},
		{248, 198, DirSouthEast},
		{150, 52, DirNorth},
		{150, 198, DirSouth},
		{52, 125, DirWest},
		{248, 125, DirEast},
		{150, 125, DirNone},
	}
	for _, tc := range cases {
		if got := DirectionAt(w, tc.px, tc.py); got != tc.want {
			t.Fatalf("DirectionAt(%v,%v) = %v, want %v", tc.px, tc.py, got, tc.want)
		}
	}
}

// resizeCase runs one selected-widget resize from press to move and returns
// the resulting geometry.
func resizeCase(t *testing.T, pressX, pressY, dx, dy float64) PlacedWidget {
	t.Helper()
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50) // 200x150
	m.Select(w.InstanceID)

	c.PointerDown(w.InstanceID, pressX, pressY)
	c.PointerMove(pressX+dx, pressY+dy)
	c.PointerUp()

	got, _ := m.Get(w.InstanceID)
	return got
}

func TestResizeAnchoringAllDirections(t *testing.T) {
	// Widget starts at {x:50, y:50, w:200, h:150}. Left edge 50, right edge
	// 250, top edge 50, bottom edge 200.
	cases := []struct {
		name           string
		pressX, pressY float64
		dx, dy         float64
		anchorRight    bool // x+width must stay 250
		anchorBottom   bool // y+height must stay 200
		wantW, wantH   float64
	}{
		{"E grows in place", 248, 125, 30, 0, false, false, 230, 150},
		{"S grows in place", 150, 198, 0, 25, false, false, 200, 175},
		{"W keeps right edge", 52, 125, -30, 0, true, false, 230, 150},
		{"N keeps bottom edge", 150, 52, 0, -20, false, true, 200, 170},
		{"NE", 248, 52, 30, -20, false, true, 230, 170},
		{"NW", 52, 52, -30, -20, true, true, 230, 170},
		{"SE", 248, 198, 10, 10, false, false, 210, 160},
		{"SW", 52, 198, -10, 10, true, false, 210, 160},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resizeCase(t, tc.pressX, tc.pressY, tc.dx, tc.dy)

			if got.Width != tc.wantW || got.Height != tc.wantH {
				t.Fatalf("size = %vx%v, want %vx%v", got.Width, got.Height, tc.wantW, tc.wantH)
			}
			if tc.anchorRight {
				if got.X+got.Width != 250 {
					t.Fatalf("right edge moved: x+width = %v, want 250", got.X+got.Width)
				}
			} else if got.X != 50 {
				t.Fatalf("x moved during %s resize: %v", tc.name, got.X)
			}
			if tc.anchorBottom {
				if got.Y+got.Height != 200 {
					t.Fatalf("bottom edge moved: y+height = %v, want 200", got.Y+got.Height)
				}
			} else if got.Y != 50 {
				t.Fatalf("y moved during %s resize: %v", tc.name, got.Y)
			}
		})
	}
}

func TestResizeNorthWestScenario(t *testing.T) {
	// Dragging the NW corner up-left by (-30,-20) grows the widget and
	// repositions it so the bottom-right corner stays put.
	got := resizeCase(t, 52, 52, -30, -20)
	if got.X != 20 || got.Y != 30 || got.Width != 230 || got.Height != 170 {
		t.Fatalf("NW resize = %+v, want {x:20 y:30 w:230 h:170}", got)
	}
}

func TestResizeSouthEastScenario(t *testing.T) {
	got := resizeCase(t, 248, 198, 10, 10)
	if got.X != 50 || got.Y != 50 || got.Width != 210 || got.Height != 160 {
		t.Fatalf("SE resize = %+v, want {x:50 y:50 w:210 h:160}", got)
	}
}

func TestResizeClampsAtMinimumWidth(t *testing.T) {
	// Dragging the E edge left past the minimum pins width at exactly 100.
	got := resizeCase(t, 248, 125, -150, 0)
	if got.Width != 100 {
		t.Fatalf("width = %v, want exactly 100", got.Width)
	}
	if got.X != 50 {
		t.Fatalf("E-edge clamp moved the origin: x = %v", got.X)
	}
}

func TestResizeClampKeepsOppositeEdgeFixed(t *testing.T) {
	// Dragging the W edge far right past the minimum: width pins at 100 and
	// the right edge must still not move.
	got := resizeCase(t, 52, 125, 500, 0)
	if got.Width != 100 {
		t.Fatalf("width = %v, want 100", got.Width)
	}
	if got.X+got.Width != 250 {
		t.Fatalf("right edge moved during clamped W resize: %v", got.X+got.Width)
	}
}

func TestResizeTracksAcrossManyMoves(t *testing.T) {
	// Every intermediate move recomputes from pointer-down state, so the
	// widget never accumulates drift.
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50)
	m.Select(w.InstanceID)

	c.PointerDown(w.InstanceID, 248, 198)
	for d := 1.0; d <= 10; d++ {
		c.PointerMove(248+d, 198+d)
	}
	c.PointerMove(248+10, 198+10)
	c.PointerUp()

	got, _ := m.Get(w.InstanceID)
	if got.Width != 210 || got.Height != 160 {
		t.Fatalf("final size = %vx%v, want 210x160", got.Width, got.Height)
	}
}

func TestCursorPreview(t *testing.T) {
	m, c := newTestController()
	w := placeAt(m, "chart", 50, 50)

	// Unselected widget: always "move".
	if got := c.CursorAt(w.InstanceID, 52, 52); got != "move" {
		t.Fatalf("cursor over unselected widget = %q, want move", got)
	}

	m.Select(w.InstanceID)
	cases := map[string]struct{ px, py float64 }{
		"nw-resize": {52, 52},
		"ne-resize": {248, 52},
		"sw-resize": {52, 198},
		"se-resize": {248, 198},
		"n-resize":  {150, 52},
		"s-resize":  {150, 198},
		"w-resize":  {52, 125},
		"e-resize":  {248, 125},
		"move":      {150, 125},
	}
	for want, p := range cases {
		if got := c.CursorAt(w.InstanceID, p.px, p.py); got != want {
			t.Fatalf("cursor at (%v,%v) = %q, want %q", p.px, p.py, got, want)
		}
	}
}

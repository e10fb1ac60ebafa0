package canvas

// EdgeThreshold is how close (in canvas units) the pointer must be to a
// widget edge for a press to start a resize instead of a drag.
const EdgeThreshold = 8.0

// Direction identifies which edge or corner a resize is anchored to.
// It is a bitmask over the four sides; corners combine two sides.
type Direction uint8

const (
	DirNone  Direction = 0
	DirNorth Direction = 1 << 0
	DirSouth Direction = 1 << 1
	DirEast  Direction = 1 << 2
	DirWest  Direction = 1 << 3

	DirNorthEast = DirNorth | DirEast
	DirNorthWest = DirNorth | DirWest
	DirSouthEast = DirSouth | DirEast
	DirSouthWest = DirSouth | DirWest
)

func (d Direction) has(side Direction) bool { return d&side != 0 }

// Cursor returns the CSS cursor glyph for a resize direction, or "move"
// when the pointer is over the widget body.
func (d Direction) Cursor() string {
	switch d {
	case DirNorth:
		return "n-resize"
	case DirSouth:
		return "s-resize"
	case DirEast:
		return "e-resize"
	case DirWest:
		return "w-resize"
	case DirNorthEast:
		return "ne-resize"
	case DirNorthWest:
		return "nw-resize"
	case DirSouthEast:
		return "se-resize"
	case DirSouthWest:
		return "sw-resize"
	}
	return "move"
}

type phase int

const (
	phaseIdle phase = iota
	phaseDragging
	phaseResizing
)

// Controller translates pointer events into Model mutations. It is the
// state machine Idle -> Dragging | Resizing(direction) -> Idle.
//
// Once a drag or resize has started, PointerMove keeps applying no matter
// where the pointer goes; only PointerUp ends the interaction. That mirrors
// the document-level listener requirement in the UI: losing events when the
// pointer leaves the widget desynchronizes the interaction.
type Controller struct {
	model   *Model
	palette *Palette

	phase  phase
	dir    Direction
	active string

	// drag: pointer-to-origin offset so the widget doesn't jump to
	// re-center under the cursor.
	offsetX, offsetY float64

	// resize: pointer position and widget geometry at pointer-down.
	pressX, pressY float64
	startX, startY float64
	startW, startH float64

	// palette drag-source, armed between drag start and drop.
	armed string
}

// NewController returns an idle controller bound to a model and palette.
func NewController(model *Model, palette *Palette) *Controller {
	return &Controller{model: model, palette: palette}
}

// DirectionAt computes which resize direction a pointer position maps to for
// the given widget, using canvas coordinates. Corners win over single edges
// because both side bits get set.
func DirectionAt(w PlacedWidget, px, py float64) Direction {
	lx := px - w.X
	ly := py - w.Y

	var d Direction
	if ly <= EdgeThreshold {
		d |= DirNorth
	} else if ly >= w.Height-EdgeThreshold {
		d |= DirSouth
	}
	if lx <= EdgeThreshold {
		d |= DirWest
	} else if lx >= w.Width-EdgeThreshold {
		d |= DirEast
	}
	return d
}

// PointerDown starts an interaction on the widget under the pointer.
// A press near an edge of the already-selected widget starts a resize;
// any other press starts a drag. The widget becomes selected either way.
// A stale instance id leaves the controller idle.
func (c *Controller) PointerDown(instanceID string, px, py float64) {
	w, ok := c.model.Get(instanceID)
	if !ok {
		return
	}

	if c.model.Selected() == instanceID {
		if d := DirectionAt(w, px, py); d != DirNone {
			c.phase = phaseResizing
			c.dir = d
			c.active = instanceID
			c.pressX, c.pressY = px, py
			c.startX, c.startY = w.X, w.Y
			c.startW, c.startH = w.Width, w.Height
			c.model.Select(instanceID)
			return
		}
	}

	c.phase = phaseDragging
	c.active = instanceID
	c.offsetX = px - w.X
	c.offsetY = py - w.Y
	c.model.Select(instanceID)
}

// PointerMove applies the current interaction for the new pointer position.
// Idle moves do nothing.
func (c *Controller) PointerMove(px, py float64) {
	switch c.phase {
	case phaseDragging:
		c.model.Move(c.active, px-c.offsetX, py-c.offsetY)

	case phaseResizing:
		dx := px - c.pressX
		dy := py - c.pressY

		newW, newH := c.startW, c.startH
		newX, newY := c.startX, c.startY

		if c.dir.has(DirEast) {
			newW = max(MinWidth, c.startW+dx)
		}
		if c.dir.has(DirWest) {
			// Growing leftward: clamp the width first, then place the
			// widget so the right edge stays fixed in canvas space.
			newW = max(MinWidth, c.startW-dx)
			newX = c.startX + c.startW - newW
		}
		if c.dir.has(DirSouth) {
			newH = max(MinHeight, c.startH+dy)
		}
		if c.dir.has(DirNorth) {
			newH = max(MinHeight, c.startH-dy)
			newY = c.startY + c.startH - newH
		}

		c.model.Resize(c.active, newW, newH)
		if newX != c.startX || newY != c.startY {
			c.model.Move(c.active, newX, newY)
		}
	}
}

// PointerUp ends any in-flight drag or resize, wherever the pointer is.
func (c *Controller) PointerUp() {
	c.phase = phaseIdle
	c.dir = DirNone
	c.active = ""
}

// ArmPaletteDrag marks a palette entry as the pending drag source.
// Unknown type ids are ignored.
func (c *Controller) ArmPaletteDrag(typeID string) {
	if _, ok := c.palette.Lookup(typeID); ok {
		c.armed = typeID
	}
}

// Drop completes a palette drag at the given canvas position, placing the
// new widget so its center lands on the drop point. Returns false when no
// palette drag was armed.
func (c *Controller) Drop(px, py float64) (PlacedWidget, bool) {
	if c.armed == "" {
		return PlacedWidget{}, false
	}
	w := c.model.Insert(c.armed, px-DefaultWidth/2, py-DefaultHeight/2)
	c.armed = ""
	return w, true
}

// CursorAt previews the cursor for a pointer hovering over the given widget
// while idle: a resize glyph near an edge of the selected widget, "move"
// otherwise.
func (c *Controller) CursorAt(instanceID string, px, py float64) string {
	if c.phase != phaseIdle {
		return c.dir.Cursor()
	}
	w, ok := c.model.Get(instanceID)
	if !ok || c.model.Selected() != instanceID {
		return "move"
	}
	return DirectionAt(w, px, py).Cursor()
}

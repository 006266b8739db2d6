package stamp

// Edge identifies one side of a window frame.
type Edge uint8

// Edge constants, usable as an EdgeSet of one.
const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// EdgeSet is a set over the four frame edges. It doubles as a
// hit-test result and as a resize-axis selector. Opposite edges can
// co-occur only when the frame is smaller than twice the hit margin.
type EdgeSet uint8

// Has reports whether the set contains the given edge.
func (s EdgeSet) Has(e Edge) bool { return s&EdgeSet(e) != 0 }

// IsEmpty reports whether no edge matched.
func (s EdgeSet) IsEmpty() bool { return s == 0 }

// String returns the contained edges as a readable list.
func (s EdgeSet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	out := ""
	for _, e := range []struct {
		edge Edge
		name string
	}{
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
	} {
		if s.Has(e.edge) {
			if out != "" {
				out += "|"
			}
			out += e.name
		}
	}
	return out
}

// HitTest reports which frame edges the pointer is within margin of.
// All four edges can match at once on a frame smaller than twice the
// margin; the caller treats the full matched set as the resize axes
// (diagonal corner resize).
func HitTest(p Point, frame Rect, margin float64) EdgeSet {
	var s EdgeSet
	if p.X <= frame.MinX()+margin {
		s |= EdgeSet(EdgeLeft)
	}
	if p.X >= frame.MaxX()-margin {
		s |= EdgeSet(EdgeRight)
	}
	if p.Y <= frame.MinY()+margin {
		s |= EdgeSet(EdgeBottom)
	}
	if p.Y >= frame.MaxY()-margin {
		s |= EdgeSet(EdgeTop)
	}
	return s
}

// DragMode describes what a drag session does to the frame.
type DragMode int

// Drag modes.
const (
	// DragNone means no session is active.
	DragNone DragMode = iota
	// DragMove translates the frame without changing its size.
	DragMove
	// DragResize adjusts the frame edges in the session's edge set.
	DragResize
)

// String returns the string representation of the mode.
func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case DragMove:
		return "move"
	case DragResize:
		return "resize"
	default:
		return "unknown"
	}
}

// DragSession is the state captured at pointer-down and held until
// pointer-up. All frame deltas are computed against the immutable
// Start snapshot, never accumulated incrementally, so intermediate
// pointer jitter cannot drift the frame.
type DragSession struct {
	Mode   DragMode
	Edges  EdgeSet
	Origin Point // pointer position at pointer-down, screen space
	Start  Rect  // frame snapshot at pointer-down
}

// Interaction defaults.
const (
	// HitMargin is the edge hit-test distance in points.
	HitMargin = 8.0
	// MinWidth is the smallest width a resize can produce.
	MinWidth = 120.0
	// MinHeight is the smallest height a resize can produce.
	MinHeight = 80.0
)

// Controller is the window-interaction state machine. It consumes
// pointer events in arrival order and produces new window frames.
// The zero value is not ready; use NewController.
//
// Controller is single-goroutine: the event loop that owns the window
// also owns the controller.
type Controller struct {
	margin    float64
	minWidth  float64
	minHeight float64

	session *DragSession
}

// NewController creates a controller with the standard hit margin and
// minimum frame size.
func NewController() *Controller {
	return &Controller{
		margin:    HitMargin,
		minWidth:  MinWidth,
		minHeight: MinHeight,
	}
}

// Session returns the active drag session, or nil when idle.
func (c *Controller) Session() *DragSession {
	return c.session
}

// PointerDown starts a drag session against the current frame. When
// locked is set no session starts and the controller stays idle. A
// pointer within the hit margin of any edge starts a resize over the
// matched edge set; anywhere else starts a move.
// Returns the mode the controller entered.
func (c *Controller) PointerDown(p Point, frame Rect, locked bool) DragMode {
	if locked {
		c.session = nil
		return DragNone
	}

	edges := HitTest(p, frame, c.margin)
	mode := DragMove
	if !edges.IsEmpty() {
		mode = DragResize
	}
	c.session = &DragSession{
		Mode:   mode,
		Edges:  edges,
		Origin: p,
		Start:  frame,
	}
	Logger().Debug("drag session started",
		"mode", mode.String(), "edges", edges.String())
	return mode
}

// PointerDrag computes the frame for the current pointer position.
// The delta is taken against the session's origin and applied to the
// frame snapshot, so any sequence of intermediate events ending at the
// same pointer position yields the same frame. Returns false when no
// session is active; drags without a preceding pointer-down are
// ignored, never buffered.
func (c *Controller) PointerDrag(p Point) (Rect, bool) {
	if c.session == nil {
		return Rect{}, false
	}
	return c.frameFor(p), true
}

// PointerUp ends the session and returns the final frame, the value
// the host should persist. Intermediate frames from PointerDrag are
// applied live but need not be stored. Returns false when idle.
func (c *Controller) PointerUp(p Point) (Rect, bool) {
	if c.session == nil {
		return Rect{}, false
	}
	frame := c.frameFor(p)
	c.session = nil
	return frame, true
}

// Cancel discards any active session without emitting a frame.
func (c *Controller) Cancel() {
	c.session = nil
}

// frameFor applies the pointer delta to the session snapshot.
func (c *Controller) frameFor(p Point) Rect {
	s := c.session
	dx := p.X - s.Origin.X
	dy := p.Y - s.Origin.Y

	if s.Mode == DragMove {
		return Rect{X: s.Start.X + dx, Y: s.Start.Y + dy, W: s.Start.W, H: s.Start.H}
	}
	return resize(s.Start, s.Edges, dx, dy, c.minWidth, c.minHeight)
}

// resize adjusts the snapshot frame along every active edge and clamps
// to the minimum size. Clamping keeps the anchor edge (the one not
// being dragged) fixed: a left or bottom resize that hits the minimum
// re-derives the origin from the far edge rather than letting the
// dragged edge invert past it. When opposite edges are both active
// (possible on a frame smaller than twice the hit margin) the deltas
// cancel into a translation along that axis, so the size is preserved.
func resize(start Rect, edges EdgeSet, dx, dy, minW, minH float64) Rect {
	x0, x1 := start.MinX(), start.MaxX()
	if edges.Has(EdgeLeft) {
		x0 += dx
	}
	if edges.Has(EdgeRight) {
		x1 += dx
	}
	if x1-x0 < minW {
		switch {
		case edges.Has(EdgeLeft) && !edges.Has(EdgeRight):
			x0 = x1 - minW // right edge is the anchor
		case edges.Has(EdgeRight) && !edges.Has(EdgeLeft):
			x1 = x0 + minW // left edge is the anchor
		}
	}

	y0, y1 := start.MinY(), start.MaxY()
	if edges.Has(EdgeBottom) {
		y0 += dy
	}
	if edges.Has(EdgeTop) {
		y1 += dy
	}
	if y1-y0 < minH {
		switch {
		case edges.Has(EdgeBottom) && !edges.Has(EdgeTop):
			y0 = y1 - minH // top edge is the anchor
		case edges.Has(EdgeTop) && !edges.Has(EdgeBottom):
			y1 = y0 + minH // bottom edge is the anchor
		}
	}

	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

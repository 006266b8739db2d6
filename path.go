package stamp

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of coordinates this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	case VerbClose:
		return 0
	default:
		return 0
	}
}

// Path represents an outline handed to the host's clipping stage.
// It stores path commands (verbs) and coordinate data separately so a
// host compositor can encode it without re-walking a node structure.
type Path struct {
	verbs  []PathVerb
	points []float64
	start  Point // Start of current subpath for Close
	cursor Point // Current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float64, 0, 64),
	}
}

// Verbs returns the path's command sequence.
func (p *Path) Verbs() []PathVerb { return p.verbs }

// Points returns the coordinate data consumed by the verbs, in order.
func (p *Path) Points() []float64 { return p.points }

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.start = Point{X: x, Y: y}
	p.cursor = p.start
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.cursor = Point{X: x, Y: y}
	return p
}

// CubicTo draws a cubic Bezier curve from the current point to (x, y)
// using (c1x, c1y) and (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.cursor = Point{X: x, Y: y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle adds a rectangle path.
func (p *Path) Rectangle(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundedRectangle adds a rounded rectangle path.
// The radius is clamped to half the smaller dimension; a non-positive
// radius degrades to a plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) *Path {
	maxR := w / 2
	if h < w {
		maxR = h / 2
	}
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		return p.Rectangle(x, y, w, h)
	}

	// Magic number for approximating circular arcs with cubic beziers
	// k = 4 * (sqrt(2) - 1) / 3 ≈ 0.5523
	const k = 0.5522847498
	kr := k * r

	p.MoveTo(x+r, y)

	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+kr, y, x+w, y+r-kr, x+w, y+r)

	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+kr, x+w-r+kr, y+h, x+w-r, y+h)

	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-kr, y+h, x, y+h-r+kr, x, y+h-r)

	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-kr, x+r-kr, y, x+r, y)

	return p.Close()
}

package stamp

// ClipCornerRadius is the corner radius, in points, of the overlay's
// visible boundary.
const ClipCornerRadius = 8.0

// ClipRegion is the visible boundary of the overlay: the viewport
// rectangle with uniformly rounded corners. Tile placements are not
// culled against it; the host's clipping stage enforces it.
type ClipRegion struct {
	Viewport Size
	Radius   float64
}

// NewClipRegion returns the clip region for a viewport, using the
// fixed overlay corner radius.
func NewClipRegion(viewport Size) ClipRegion {
	return ClipRegion{Viewport: viewport, Radius: ClipCornerRadius}
}

// Path returns the rounded-rectangle outline of the clip region.
func (c ClipRegion) Path() *Path {
	return NewPath().RoundedRectangle(0, 0, c.Viewport.W, c.Viewport.H, c.Radius)
}

// Contains reports whether a point (in viewport coordinates) falls
// inside the clip region, treating each corner as a quarter circle.
func (c ClipRegion) Contains(p Point) bool {
	if p.X < 0 || p.X > c.Viewport.W || p.Y < 0 || p.Y > c.Viewport.H {
		return false
	}
	r := c.Radius
	if r <= 0 {
		return true
	}

	// Distance check against the nearest corner circle center, but only
	// when the point lies inside a corner square.
	var cx, cy float64
	switch {
	case p.X < r && p.Y < r:
		cx, cy = r, r
	case p.X > c.Viewport.W-r && p.Y < r:
		cx, cy = c.Viewport.W-r, r
	case p.X < r && p.Y > c.Viewport.H-r:
		cx, cy = r, c.Viewport.H-r
	case p.X > c.Viewport.W-r && p.Y > c.Viewport.H-r:
		cx, cy = c.Viewport.W-r, c.Viewport.H-r
	default:
		return true
	}
	return p.Distance(Point{X: cx, Y: cy}) <= r
}

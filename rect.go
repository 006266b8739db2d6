package stamp

// Rect represents a window frame in screen coordinates.
// The origin is the bottom-left corner and Y increases upward, so MinY
// is the bottom edge and MaxY the top edge.
type Rect struct {
	X, Y, W, H float64
}

// Rc is a convenience function to create a Rect.
func Rc(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MinX returns the left edge coordinate.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the bottom edge coordinate.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the top edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether the point lies inside the rectangle,
// including points exactly on its edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Outset returns the rectangle grown by d on all four sides.
// A negative d shrinks the rectangle instead.
func (r Rect) Outset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClampSize returns the rectangle with its width and height raised to
// the given minimums. The origin is unchanged, so the bottom-left
// corner stays fixed when clamping grows the rectangle.
func (r Rect) ClampSize(minW, minH float64) Rect {
	if r.W < minW {
		r.W = minW
	}
	if r.H < minH {
		r.H = minH
	}
	return r
}

package stamp

import "math"

// Placement positions one copy of the watermark text in the unrotated
// tiling space. Frame.Transform maps it into viewport coordinates.
type Placement struct {
	Text string
	Pos  Point
}

// Frame is one paint request's worth of renderer output: the tile
// placements, the rotation transform applying to the whole batch, the
// visible clip region, and the uniform paint style.
type Frame struct {
	Placements []Placement
	Transform  Matrix
	Clip       ClipRegion
	Style      Paint
}

// Measurer measures the extent of a string at a font size. The overlay
// measures with a bold face; stamp/text provides the standard
// implementation.
type Measurer interface {
	MeasureString(s string, size float64) (w, h float64)
}

// Renderer computes tile placements for the overlay. It is stateless
// apart from its construction-time options: Render is a pure function
// of its inputs and may be called repeatedly or skipped under rapid
// successive paint requests.
type Renderer struct {
	measurer     Measurer
	cornerRadius float64
}

// NewRenderer creates a Renderer. Without WithMeasurer the renderer
// has no way to size tiles and renders nothing.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		measurer:     o.measurer,
		cornerRadius: o.cornerRadius,
	}
}

// Render computes the placements covering the rotated, clipped
// viewport for the given settings snapshot.
//
// Placements are generated on an unrotated grid whose step per axis is
// the measured text extent plus the configured spacing. To guarantee
// the rotated tiling covers the viewport with no gaps at corners, the
// grid extends past the viewport by 2 × max(stepX, stepY) on all four
// sides before rotation. The returned transform rotates the whole
// batch around the viewport center; placements outside the clip are
// not culled; the host's clipping stage enforces visibility.
//
// Degenerate inputs (empty text, non-positive font size, non-positive
// step) yield a frame with no placements.
func (r *Renderer) Render(cfg Config, viewport Size) Frame {
	cfg = cfg.Normalize()

	frame := Frame{
		Transform: Identity(),
		Clip:      ClipRegion{Viewport: viewport, Radius: r.cornerRadius},
		Style:     cfg.Paint(),
	}

	if cfg.Text == "" || cfg.FontSize <= 0 || viewport.IsEmpty() || r.measurer == nil {
		return frame
	}

	w, h := r.measurer.MeasureString(cfg.Text, cfg.FontSize)
	stepX := w + cfg.Spacing
	stepY := h + cfg.Spacing
	if stepX <= 0 || stepY <= 0 {
		// A zero step would tile forever at the same position.
		Logger().Debug("degenerate tile step, rendering nothing",
			"stepX", stepX, "stepY", stepY)
		return frame
	}

	frame.Transform = RotateAbout(Radians(cfg.Angle), viewport.Center())

	inset := 2 * math.Max(stepX, stepY)
	cols := int(math.Ceil((viewport.W + 2*inset) / stepX))
	rows := int(math.Ceil((viewport.H + 2*inset) / stepY))

	frame.Placements = make([]Placement, 0, cols*rows)
	for row := 0; row < rows; row++ {
		y := -inset + float64(row)*stepY
		for col := 0; col < cols; col++ {
			x := -inset + float64(col)*stepX
			frame.Placements = append(frame.Placements, Placement{
				Text: cfg.Text,
				Pos:  Point{X: x, Y: y},
			})
		}
	}

	return frame
}

// Step returns the tiling step for the given settings snapshot, or
// (0, 0) when the inputs are degenerate. Exposed so hosts can size
// preview surfaces without running a full render.
func (r *Renderer) Step(cfg Config) (stepX, stepY float64) {
	cfg = cfg.Normalize()
	if cfg.Text == "" || cfg.FontSize <= 0 || r.measurer == nil {
		return 0, 0
	}
	w, h := r.measurer.MeasureString(cfg.Text, cfg.FontSize)
	stepX = w + cfg.Spacing
	stepY = h + cfg.Spacing
	if stepX <= 0 || stepY <= 0 {
		return 0, 0
	}
	return stepX, stepY
}

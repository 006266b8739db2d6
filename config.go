package stamp

import "math"

// Default configuration values, applied when no stored configuration
// exists or the stored record is malformed.
const (
	DefaultText     = "© COPYRIGHT"
	DefaultAngle    = -30.0
	DefaultFontSize = 36.0
	DefaultOpacity  = 0.15
	DefaultSpacing  = 24.0
)

// Default overlay frame dimensions, used when no frame has been stored
// yet. The frame is centered on screen on first run.
const (
	DefaultFrameWidth  = 480.0
	DefaultFrameHeight = 320.0
)

// Config holds the overlay settings the core reads each cycle. It is a
// value snapshot: the settings collaborator owns the stored record and
// the core never mutates a Config it was handed.
type Config struct {
	// Text is the watermark string tiled across the overlay.
	Text string

	// Angle is the rotation in degrees. Any real value is accepted;
	// Normalize folds it into [-180, 180] for trig stability.
	Angle float64

	// FontSize is the text size in points. Must be > 0 to render.
	FontSize float64

	// Opacity is the overlay opacity in [0, 1].
	Opacity float64

	// Spacing is the gap between adjacent tiles, in points, applied
	// equally on both axes. Never negative after Normalize.
	Spacing float64

	// Color is the text color with normalized channels.
	Color RGBA

	// Locked disables window move/resize and makes the overlay
	// click-through.
	Locked bool

	// Frame is the last stored window frame, nil before first save.
	Frame *Rect
}

// DefaultConfig returns the configuration used on first run.
func DefaultConfig() Config {
	return Config{
		Text:     DefaultText,
		Angle:    DefaultAngle,
		FontSize: DefaultFontSize,
		Opacity:  DefaultOpacity,
		Spacing:  DefaultSpacing,
		Color:    White,
	}
}

// Normalize returns the config with out-of-range values folded back
// into their documented domains: angle into [-180, 180], opacity into
// [0, 1], spacing to >= 0. Text, font size, and color pass through;
// degenerate values there make the renderer draw nothing rather than
// being "repaired" here.
func (c Config) Normalize() Config {
	c.Angle = NormalizeDegrees(c.Angle)
	c.Opacity = clamp01(c.Opacity)
	if c.Spacing < 0 {
		c.Spacing = 0
	}
	return c
}

// Paint returns the uniform placement style for the config: the text
// color with the overlay opacity folded into its alpha channel.
func (c Config) Paint() Paint {
	return Paint{Color: c.Color.WithAlpha(c.Color.A * clamp01(c.Opacity))}
}

// NormalizeDegrees folds an angle in degrees into [-180, 180].
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg < -180 {
		deg += 360
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

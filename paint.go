package stamp

// Paint is the uniform style applied to every placement in a frame.
// Style never affects geometry: changing color or opacity leaves the
// placement grid identical.
type Paint struct {
	// Color carries the text color with the overlay opacity already
	// folded into the alpha channel.
	Color RGBA
}

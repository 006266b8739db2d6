package stamp

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	src, _ := text.DefaultBoldSource()
//	r := stamp.NewRenderer(stamp.WithMeasurer(text.NewMeasurer(src)))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	measurer     Measurer
	cornerRadius float64
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		cornerRadius: ClipCornerRadius,
	}
}

// WithMeasurer sets the text measurer used to size tiles. The overlay
// measures with a bold face; pass text.NewMeasurer over a bold source.
func WithMeasurer(m Measurer) RendererOption {
	return func(o *rendererOptions) {
		o.measurer = m
	}
}

// WithCornerRadius overrides the clip region's corner radius.
// Primarily useful in tests; the overlay itself always uses
// [ClipCornerRadius].
func WithCornerRadius(r float64) RendererOption {
	return func(o *rendererOptions) {
		o.cornerRadius = r
	}
}

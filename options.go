package pixelaa

// RendererOption configures a SoftwareRenderer during creation.
//
// Example:
//
//	// Default configuration
//	r := pixelaa.NewSoftwareRenderer()
//
//	// Wider antialias zone
//	r := pixelaa.NewSoftwareRenderer(pixelaa.WithDefaultSmoothSize(2))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	defaultSmoothSize float64
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		defaultSmoothSize: DefaultSmoothSize,
	}
}

// WithDefaultSmoothSize sets the smooth size used when a RenderState
// requests smoothing but leaves SmoothSize at zero.
func WithDefaultSmoothSize(px float64) RendererOption {
	return func(o *rendererOptions) {
		if px > 0 {
			o.defaultSmoothSize = px
		}
	}
}

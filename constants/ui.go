package constants

// Colors (hex, parsed by render.Palette)
const (
	// DefaultColor is the base foreground; every glyph is shaded from it by intensity
	DefaultColor    = "#e8e8ff"
	BackgroundColor = "#000000"
)

// Intensity levels in [0,1], eased before blending toward the background
const (
	IntensityLevelDim    = 0.45
	IntensityLevelNormal = 0.8
	IntensityLevelBold   = 1.0
)

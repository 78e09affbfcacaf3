package appicon

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "assets"

// Variant is one raster asset written by Generate.
type Variant struct {
	// Name identifies the asset, e.g. "favicon".
	Name string

	// File is the file name inside the output directory.
	File string

	// Size is the width and height in pixels.
	Size int
}

// DefaultVariants returns the application icon assets in the order they
// are written. The first entry is the full-resolution canvas.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "icon", File: "icon.png", Size: CanvasSize},
		{Name: "adaptive-icon", File: "adaptive-icon.png", Size: 512},
		{Name: "favicon", File: "favicon.png", Size: 48},
		{Name: "splash-icon", File: "splash-icon.png", Size: 400},
	}
}

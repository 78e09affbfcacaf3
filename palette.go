package appicon

import "github.com/gogpu/gg"

// Palette holds the fill colors of the icon.
type Palette struct {
	Background gg.RGBA
	Body       gg.RGBA
	Clapper    gg.RGBA
}

// Icon colors.
var (
	Green  = gg.Hex("#4CAF50")
	Purple = gg.Hex("#9C27B0")
	Gold   = gg.Hex("#FFD700")
)

// DefaultPalette returns the green, purple and gold icon palette.
func DefaultPalette() Palette {
	return Palette{
		Background: Green,
		Body:       Purple,
		Clapper:    Gold,
	}
}

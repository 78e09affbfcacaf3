package appicon

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Render draws the icon onto a CanvasSize x CanvasSize canvas and returns
// the resulting image. The returned image is independent of any drawing
// state and may be resized or encoded freely.
func Render() (image.Image, error) {
	dc := gg.NewContext(CanvasSize, CanvasSize)
	defer func() { _ = dc.Close() }()

	p := DefaultPalette()
	dc.ClearWithColor(p.Background)

	if err := DefaultBell().Draw(dc, p); err != nil {
		return nil, fmt.Errorf("appicon: draw bell: %w", err)
	}

	Logger().Debug("icon rendered", "width", dc.Width(), "height", dc.Height())
	return dc.Image(), nil
}

package appicon

import "github.com/gogpu/gg"

// CanvasSize is the width and height of the full-resolution icon.
const CanvasSize = 1024

// Bell dimensions in canvas pixels.
const (
	bellOffsetY      = 50 // center is raised above the canvas center
	bellHeight       = 450
	bellTopWidth     = 200
	bellBottomWidth  = 350
	crownWidth       = 60
	crownHeight      = 80
	clapperRadius    = 30
	clapperRiseAbove = 50 // clapper center distance from the body's bottom edge
)

// Point is an integer canvas coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H int
}

// Circle is a circle centered at (X, Y).
type Circle struct {
	X, Y, R int
}

// Bell describes the bell shape placed on a square canvas.
// All derived coordinates use integer division, so the geometry is exact.
type Bell struct {
	CenterX, CenterY int
	TopWidth         int
	BottomWidth      int
	Height           int
}

// DefaultBell returns the bell used for the application icon.
func DefaultBell() Bell {
	return Bell{
		CenterX:     CanvasSize / 2,
		CenterY:     CanvasSize/2 - bellOffsetY,
		TopWidth:    bellTopWidth,
		BottomWidth: bellBottomWidth,
		Height:      bellHeight,
	}
}

// TopY returns the y coordinate of the body's top edge.
func (b Bell) TopY() int {
	return b.CenterY - b.Height/2
}

// BottomY returns the y coordinate of the body's bottom edge.
func (b Bell) BottomY() int {
	return b.CenterY + b.Height/2
}

// Body returns the trapezoid vertices in drawing order:
// top-left, top-right, bottom-right, bottom-left.
func (b Bell) Body() [4]Point {
	top, bottom := b.TopY(), b.BottomY()
	return [4]Point{
		{b.CenterX - b.TopWidth/2, top},
		{b.CenterX + b.TopWidth/2, top},
		{b.CenterX + b.BottomWidth/2, bottom},
		{b.CenterX - b.BottomWidth/2, bottom},
	}
}

// Crown returns the rectangle sitting directly on top of the body.
func (b Bell) Crown() Rect {
	return Rect{
		X: b.CenterX - crownWidth/2,
		Y: b.TopY() - crownHeight,
		W: crownWidth,
		H: crownHeight,
	}
}

// Clapper returns the circle hanging inside the body.
func (b Bell) Clapper() Circle {
	return Circle{
		X: b.CenterX,
		Y: b.BottomY() - clapperRiseAbove,
		R: clapperRadius,
	}
}

// Draw fills the body, crown and clapper onto dc using the palette colors.
func (b Bell) Draw(dc *gg.Context, p Palette) error {
	dc.SetColor(p.Body)
	for i, pt := range b.Body() {
		if i == 0 {
			dc.MoveTo(float64(pt.X), float64(pt.Y))
		} else {
			dc.LineTo(float64(pt.X), float64(pt.Y))
		}
	}
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return err
	}

	cr := b.Crown()
	dc.DrawRectangle(float64(cr.X), float64(cr.Y), float64(cr.W), float64(cr.H))
	if err := dc.Fill(); err != nil {
		return err
	}

	cl := b.Clapper()
	dc.SetColor(p.Clapper)
	dc.DrawCircle(float64(cl.X), float64(cl.Y), float64(cl.R))
	return dc.Fill()
}

package appicon

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter selects the resampling algorithm used to downscale the icon.
type Filter int

const (
	// Lanczos is a windowed sinc filter with three lobes. It keeps edges
	// sharp when shrinking by large factors, e.g. 1024 to 48.
	Lanczos Filter = iota

	// CatmullRom is a cubic filter. Slightly softer than Lanczos.
	CatmullRom
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case Lanczos:
		return "lanczos3"
	case CatmullRom:
		return "catmull-rom"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// Scale returns a size x size copy of src. When src already has the
// requested dimensions it is returned as-is.
func (f Filter) Scale(src image.Image, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("appicon: invalid size %d (must be > 0)", size)
	}
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return src, nil
	}

	switch f {
	case Lanczos:
		return resize.Resize(uint(size), uint(size), src, resize.Lanczos3), nil
	case CatmullRom:
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		return dst, nil
	default:
		return nil, fmt.Errorf("appicon: unknown filter %v", f)
	}
}

package appicon

import (
	"fmt"
	"image/png"
	"os"
)

// SizeMismatchError reports a written file whose dimensions differ from
// the expected variant size.
type SizeMismatchError struct {
	Path          string
	Want          int
	Width, Height int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("appicon: %s is %dx%d, want %dx%d",
		e.Path, e.Width, e.Height, e.Want, e.Want)
}

// Verify reads back every file in the report and checks that it is a PNG
// with the recorded dimensions.
func Verify(r *Report) error {
	for _, f := range r.Files {
		if err := verifyFile(f); err != nil {
			return err
		}
	}
	return nil
}

func verifyFile(f File) error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("appicon: verify %q: %w", f.Path, err)
	}
	defer func() { _ = fh.Close() }()

	cfg, err := png.DecodeConfig(fh)
	if err != nil {
		return fmt.Errorf("appicon: verify %q: %w", f.Path, err)
	}
	if cfg.Width != f.Size || cfg.Height != f.Size {
		return &SizeMismatchError{Path: f.Path, Want: f.Size, Width: cfg.Width, Height: cfg.Height}
	}
	return nil
}

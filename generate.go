package appicon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// File is an asset written by Generate.
type File struct {
	Path string
	Size int
}

// Report lists the files written by a successful Generate call,
// in the order they were written.
type Report struct {
	Dir   string
	Files []File
}

// Generate renders the icon and writes every configured variant into the
// output directory, creating the directory if needed. Existing files are
// overwritten.
//
// The first failure stops generation and is returned with the failing path.
// No report is returned on failure.
func Generate(opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return nil, fmt.Errorf("appicon: create dir %q: %w", o.dir, err)
	}

	src, err := Render()
	if err != nil {
		return nil, err
	}

	report := &Report{Dir: o.dir}
	for _, v := range o.variants {
		path := filepath.Join(o.dir, v.File)

		img, err := o.filter.Scale(src, v.Size)
		if err != nil {
			return nil, fmt.Errorf("appicon: resize %q: %w", path, err)
		}
		if err := savePNG(path, img); err != nil {
			return nil, fmt.Errorf("appicon: write %q: %w", path, err)
		}

		Logger().Debug("asset written", "path", path, "size", v.Size, "filter", o.filter)
		report.Files = append(report.Files, File{Path: path, Size: v.Size})
	}

	Logger().Info("icons generated", "dir", o.dir, "count", len(report.Files))
	return report, nil
}

// savePNG encodes img to path, replacing any existing file.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path is configured by the caller
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}

package appicon

import (
	"fmt"
	"io"
	"path/filepath"
)

// WriteSummary prints the human-readable completion message for r.
func WriteSummary(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintln(w, "✅ All app icons created successfully!"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "📁 Files created:"); err != nil {
		return err
	}
	for _, f := range r.Files {
		_, err := fmt.Fprintf(w, "   - %s (%dx%d)\n", filepath.ToSlash(f.Path), f.Size, f.Size)
		if err != nil {
			return err
		}
	}
	return nil
}

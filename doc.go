// Package appicon renders the bell application icon and writes its raster
// asset variants.
//
// # Overview
//
// The icon is drawn procedurally with gg onto a 1024x1024 canvas: a green
// background, a purple trapezoid bell body with a small rectangular top, and
// a gold circular clapper. The rendered canvas is saved as-is and then
// downscaled into the remaining asset sizes.
//
// # Quick Start
//
//	report, err := appicon.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = appicon.WriteSummary(os.Stdout, report)
//
// # Outputs
//
// By default four files are written under "assets":
//   - icon.png (1024x1024)
//   - adaptive-icon.png (512x512)
//   - favicon.png (48x48)
//   - splash-icon.png (400x400)
//
// Existing files are overwritten. Output is fully deterministic: running
// Generate twice produces byte-identical files.
//
// # Resampling
//
// Downscaled variants use Lanczos3 by default. CatmullRom is available via
// [WithFilter].
package appicon

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

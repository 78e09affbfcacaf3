package appicon

// Option configures Generate.
//
// Example:
//
//	// Default: Lanczos3 into ./assets
//	report, err := appicon.Generate()
//
//	// Custom directory and filter
//	report, err := appicon.Generate(
//		appicon.WithDir("build/icons"),
//		appicon.WithFilter(appicon.CatmullRom),
//	)
type Option func(*options)

// options holds optional configuration for Generate.
type options struct {
	dir      string
	filter   Filter
	variants []Variant
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		dir:      DefaultDir,
		filter:   Lanczos,
		variants: DefaultVariants(),
	}
}

// WithDir sets the output directory. It is created if missing.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithFilter sets the resampling filter for downscaled variants.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithVariants replaces the set of assets to write.
// A nil or empty slice restores the defaults.
func WithVariants(variants ...Variant) Option {
	return func(o *options) {
		if len(variants) == 0 {
			o.variants = DefaultVariants()
			return
		}
		o.variants = variants
	}
}

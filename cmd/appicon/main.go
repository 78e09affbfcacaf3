// Command appicon renders the bell application icon into ./assets.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/appicon"
)

func main() {
	verbose := flag.Bool("v", false, "log each written file to stderr")
	flag.Parse()

	if *verbose {
		appicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	report, err := appicon.Generate()
	if err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}
	if err := appicon.Verify(report); err != nil {
		log.Fatalf("Failed to verify icons: %v", err)
	}

	if err := appicon.WriteSummary(os.Stdout, report); err != nil {
		log.Fatalf("Failed to print summary: %v", err)
	}
}

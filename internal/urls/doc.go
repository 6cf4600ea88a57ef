// Package urls holds the project links used in help text and the TUI header,
// so they can change in one place.
//
// Usage:
//
//	import "github.com/muurk/florist/internal/urls"
//
//	fmt.Printf("Seed file format: %s\n", urls.SeedFiles)
package urls

// Package buildinfo содержит сведения о сборке, задаваемые через ldflags.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

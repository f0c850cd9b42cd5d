// Package version exposes build metadata injected at link time.
package version

// Overridden with -ldflags "-X github.com/farcloser/stansum/version.version=...".
//
//nolint:gochecknoglobals
var (
	name    = "stansum"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version.
func Version() string {
	return version
}

// Commit returns the source revision the binary was built from.
func Commit() string {
	return commit
}

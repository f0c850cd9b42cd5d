// Package testutils provides test infrastructure for stansum integration tests.
package testutils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"
)

// BinaryEnv overrides the stansum binary under test.
const BinaryEnv = "STANSUM_BINARY"

// BinaryPath returns the binary under test: $STANSUM_BINARY when set, bin/stansum in the project root otherwise.
func BinaryPath() string {
	if fromEnv := os.Getenv(BinaryEnv); fromEnv != "" {
		return fromEnv
	}

	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed

	return filepath.Join(thisFile, "..", "..", "..", "bin", "stansum")
}

// Setup creates a test case running the stansum binary.
func Setup() *test.Case {
	return agar.Setup(filepath.Clean(BinaryPath()))
}

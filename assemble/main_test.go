package assemble_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutine survives the package's tests — the
// Concurrent path must fully drain its errgroup before returning.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

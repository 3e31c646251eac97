// Package gsttesting provides shared fixtures for testing a gst.Tree: a
// logging-wired TestContext, and a set of literal seed scenarios, so the
// gst unit tests and the tests/ end-to-end package share one fixture
// source instead of duplicating the word lists.
package gsttesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

// TestContext bundles a *testing.T with a logger. There is no storage
// emulator to connect to here - this package indexes in-memory strings,
// not blobs - so the shape is just the two fields.
type TestContext struct {
	T   *testing.T
	Log logger.Logger
}

// NewTestContext wires a NOOP logger so test output stays quiet by
// default.
func NewTestContext(t *testing.T) TestContext {
	logger.New("NOOP")
	t.Cleanup(logger.OnExit)
	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName("gsttesting"),
	}
}

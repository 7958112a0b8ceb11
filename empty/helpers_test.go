package empty_test

import (
	"testing"

	"github.com/amp-labs/nothing/logger"
	"github.com/neilotoole/slogt"
)

// captureLogs routes the package logger into the test log until t ends.
// Tests that use it mutate global state and must not run in parallel.
func captureLogs(t *testing.T) {
	t.Helper()

	prev := logger.Set(slogt.New(t))

	t.Cleanup(func() {
		logger.Set(prev)
	})
}

// recovered runs f and returns whatever it panicked with.
func recovered(f func()) (value any) {
	defer func() {
		value = recover()
	}()

	f()

	return nil
}

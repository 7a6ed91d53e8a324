// Package leaktest checks tests for leaked goroutines.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker compares goroutine counts before and after a test body
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check waits for exiting goroutines to be reaped, then fails the test when
// more than tolerance goroutines outlived the body.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// Run executes fn and requires every goroutine it started to exit
func Run(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until at most limit goroutines are running or the timeout
// passes, and returns the last count seen
func settle(limit int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= limit || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

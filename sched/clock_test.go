package sched_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iam-peekay/underbar/sched"
)

func TestSystemNow(t *testing.T) {
	clock := sched.System()
	before := time.Now()
	now := clock.Now()
	after := time.Now()
	require.False(t, now.Before(before))
	require.False(t, now.After(after))
}

// The one real-time test in the module: a smoke check that the system
// clock actually defers and fires. All timing logic is tested against the
// fake clock.
func TestSystemScheduleFires(t *testing.T) {
	clock := sched.System()
	done := make(chan struct{})
	start := time.Now()
	clock.Schedule(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
		require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond,
			"callback must not fire before the requested delay")
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled callback never fired")
	}
}

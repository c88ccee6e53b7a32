package funcs

import "github.com/iam-peekay/underbar/sched"

// Option configures a time-based decorator ([Delay], [Throttle],
// [Debounce]).
type Option func(*settings)

type settings struct {
	clock sched.Clock
}

// WithClock substitutes the clock a decorator measures and schedules time
// with. The default is [sched.System]; tests pass a [sched.Fake].
func WithClock(c sched.Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

func newSettings(opts []Option) settings {
	s := settings{clock: sched.System()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

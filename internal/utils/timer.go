package utils

import "time"

// Timer measures elapsed wall-clock time. Create one with [NewTimer], which
// starts it immediately, then call [Timer.Stop].
type Timer struct {
	startTime time.Time
	duration  time.Duration
}

// NewTimer creates a started Timer.
func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Stop records the time elapsed since the timer was created and returns it.
func (t *Timer) Stop() time.Duration {
	t.duration = time.Since(t.startTime)
	return t.duration
}

// Duration returns the value captured by the last [Timer.Stop], or zero.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

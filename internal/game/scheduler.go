package game

import "time"

// Scheduler runs deferred pair validation.
// AfterFunc must not call fn before it returns; the returned func cancels fn
// and reports whether it was stopped before running.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}

// TimerScheduler schedules on the runtime timer
type TimerScheduler struct{}

// AfterFunc runs fn in its own goroutine after d
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

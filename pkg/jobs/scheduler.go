package jobs

import (
	"time"
)

type (
	// Scheduler triggers completion of asynchronous work some time after
	// submission. The demo implementation fires a timer that simulates an
	// external processing backend; a production deployment replaces this
	// trigger with the backend's webhook or a status poller, both of which
	// call the same idempotent completion methods on the owning service.
	Scheduler interface {
		Schedule(delay time.Duration, complete func())
	}

	timerScheduler struct{}
)

func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (s *timerScheduler) Schedule(delay time.Duration, complete func()) {
	time.AfterFunc(delay, complete)
}

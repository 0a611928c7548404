package scheduler

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/ideahub/internal/logger"
)

const (
	// DefaultQuietPeriod is the autosave quiet period: a save fires this
	// long after the last edit if no further edit re-armed the timer.
	DefaultQuietPeriod = 10 * time.Second
)

// Debouncer is an explicit cancellable scheduled task: Arm cancels any
// pending timer and schedules the callback after the quiet period. At most
// one timer is live at a time; re-arming replaces the previous schedule.
// There is no retry concept, the callback either fires once or is cancelled.
type Debouncer struct {
	mu     sync.Mutex
	quiet  time.Duration
	fire   func()
	timer  *time.Timer
	logger logger.Logger
}

// NewDebouncer creates a debouncer firing fire after quiet of inactivity.
func NewDebouncer(quiet time.Duration, fire func(), log logger.Logger) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}

	return &Debouncer{
		quiet:  quiet,
		fire:   fire,
		logger: log,
	}
}

// Arm schedules (or reschedules) the callback after the quiet period.
func (d *Debouncer) Arm() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()

		d.logger.Debug("debounce quiet period elapsed, firing",
			logger.Duration("quiet", d.quiet))
		d.fire()
	})
}

// Cancel stops any pending schedule without firing.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush fires immediately if a schedule is pending. Used on shutdown so a
// staged edit is not lost to the quiet period.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil
	if pending {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if pending {
		d.fire()
	}
}

// Armed reports whether a schedule is currently pending.
func (d *Debouncer) Armed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

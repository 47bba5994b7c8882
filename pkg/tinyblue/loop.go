package tinyblue

import (
	"context"
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
)

// Loop drains an EventQueue into a Navigator and periodically refreshes
// dynamic item text. It is the only goroutine that mutates navigation state.
type Loop struct {
	Navigator *Navigator
	Queue     *EventQueue
	Tick      time.Duration // Event drain interval (default 10ms)
	Refresh   time.Duration // Refresh interval (default 1s); negative disables
	OnRefresh func()        // Called before each periodic redraw, e.g. to update sensor text
}

// Step applies at most one pending event.
func (l *Loop) Step() error {
	event := l.Queue.Take()
	if event == EventNone {
		return nil
	}
	l.Navigator.logger.Debug("Dispatching event", "event", event.String(), "path", l.Navigator.Path())
	return l.Navigator.Dispatch(event)
}

// RefreshNow runs OnRefresh and redraws the active screen.
func (l *Loop) RefreshNow() error {
	if l.OnRefresh != nil {
		l.OnRefresh()
	}
	return l.Navigator.Render()
}

// Run draws the active screen and processes events until ctx is cancelled.
// It returns nil on cancellation and the first navigation or display error otherwise.
func (l *Loop) Run(ctx context.Context) error {
	tick := l.Tick
	if tick <= 0 {
		tick = constants.DefaultTickInterval
	}
	refresh := l.Refresh
	if refresh == 0 {
		refresh = constants.DefaultRefreshInterval
	}

	if err := l.RefreshNow(); err != nil {
		return err
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var refreshC <-chan time.Time
	if refresh > 0 {
		refreshTicker := time.NewTicker(refresh)
		defer refreshTicker.Stop()
		refreshC = refreshTicker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := l.Step(); err != nil {
				return err
			}
		case <-refreshC:
			if err := l.RefreshNow(); err != nil {
				return err
			}
		}
	}
}

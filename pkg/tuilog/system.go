package tuilog

import (
	"context"
	"sync"
	"time"

	"github.com/rivo/tview"
)

// DefaultRedrawInterval is how often a System refreshes its window when no
// interval is configured.
const DefaultRedrawInterval = 100 * time.Millisecond

// System is the scheduler-driven integration: instead of the host calling
// Draw once per frame, the system owns its own window and redraws it on a
// ticker through the application's update queue.
type System struct {
	handle   *Handle
	app      *tview.Application
	window   *Window
	interval time.Duration
	wg       sync.WaitGroup
}

// CreateSystem builds a System drawing into a window it owns. Place
// system.Window() into the application's layout, then call Start.
func (h *Handle) CreateSystem(app *tview.Application, spec WindowSpec) *System {
	return &System{
		handle:   h,
		app:      app,
		window:   NewWindow(spec),
		interval: DefaultRedrawInterval,
	}
}

// SetInterval changes the redraw interval. Must be called before Start.
func (s *System) SetInterval(d time.Duration) *System {
	if d > 0 {
		s.interval = d
	}
	return s
}

// Window returns the window the system draws into.
func (s *System) Window() *Window {
	return s.window
}

// Start begins the periodic redraw loop. It returns immediately; the loop
// runs until ctx is cancelled.
func (s *System) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.app.QueueUpdateDraw(func() {
					s.handle.Draw(s.window)
				})
			}
		}
	}()
}

// Wait blocks until the redraw loop has exited after context cancellation.
func (s *System) Wait() {
	s.wg.Wait()
}

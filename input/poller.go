package input

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-cuber/core"
)

// Poller reads screen events on its own goroutine and forwards them on a channel
type Poller struct {
	screen tcell.Screen
	events chan tcell.Event

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewPoller creates a poller, buffer sizes the event channel
func NewPoller(screen tcell.Screen, buffer int) *Poller {
	return &Poller{
		screen: screen,
		events: make(chan tcell.Event, buffer),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Events returns the input event channel, closed when polling ends
func (p *Poller) Events() <-chan tcell.Event {
	return p.events
}

// Run polls until ctx is done, the screen is finalized or Stop is called
func (p *Poller) Run(ctx context.Context) error {
	defer close(p.doneCh)
	defer close(p.events)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-p.stopCh:
		}
	}()

	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			select {
			case <-p.stopCh:
				return nil
			default:
				continue
			}
		}

		select {
		case p.events <- ev:
		case <-p.stopCh:
			return nil
		}
	}
}

// Stop unblocks PollEvent and ends Run
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		// Synthetic event unblocks PollEvent
		_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

// Done is closed once Run returns
func (p *Poller) Done() <-chan struct{} {
	return p.doneCh
}

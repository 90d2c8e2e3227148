// Package tickview is a small terminal application. It shows one line of
// text, which is replaced by the value of a background counter every few
// seconds, or by "a" when the a key is pressed.
//
// The App owns all state. It renders, then waits on whichever comes first of
// the next input event or the next tick, applies it, and renders again until
// a quit key is pressed.
package tickview

import (
	"errors"
	"fmt"

	"git.sr.ht/~rockorager/tickview/log"
)

// ErrNoSources is returned by Run when the input and the tick channel are
// both closed. Nothing could change the state anymore.
var ErrNoSources = errors.New("tickview: input and ticks are closed")

// State is what the App renders
type State struct {
	// Is the application running?
	Running bool

	// Text is the string drawn on screen
	Text string
}

// App is the render loop. It is not safe for concurrent use: its state
// belongs to the goroutine calling Run
type App struct {
	state State
}

// New returns a running App with empty text
func New() *App {
	return &App{
		state: State{Running: true},
	}
}

// State returns a copy of the current state
func (a *App) State() State {
	return a.state
}

// Run renders the state to srf, then waits for an event from in or a value
// from ticks and applies it. Run returns nil once a quit key was pressed; it
// does not render after that. Errors from srf or from in are returned.
//
// A closed in or ticks is ignored. When both are closed Run returns
// ErrNoSources.
func (a *App) Run(srf Surface, in Input, ticks <-chan int) error {
	events := in.Events()
	for a.state.Running {
		if err := srf.Render(a.state.Text); err != nil {
			log.Error("render: %v", err)
			return fmt.Errorf("render: %w", err)
		}
		if events == nil && ticks == nil {
			log.Error("%v", ErrNoSources)
			return ErrNoSources
		}

		select {
		case ev, ok := <-events:
			if !ok {
				log.Debug("input closed")
				events = nil
				continue
			}
			if err := a.HandleEvent(ev); err != nil {
				log.Error("%v", err)
				return err
			}
		case v, ok := <-ticks:
			if !ok {
				log.Debug("ticks closed")
				ticks = nil
				continue
			}
			a.HandleTick(v)
		}
	}
	return nil
}

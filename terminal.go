package tickview

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"git.sr.ht/~rockorager/vaxis"

	"git.sr.ht/~rockorager/tickview/log"
	"git.sr.ht/~rockorager/tickview/widgets/label"
)

// ErrTerminalClosed is delivered as an input event when vaxis restored the
// terminal on its own, which it does on SIGINT and SIGTERM. Render returns
// it once the terminal is closed.
var ErrTerminalClosed = errors.New("tickview: terminal closed")

// Terminal is the Surface and Input of a real terminal. It draws the text
// with a label widget
type Terminal struct {
	vx    *vaxis.Vaxis
	label *label.Label

	events chan vaxis.Event
	done   chan struct{}
	closed atomic.Bool
	once   sync.Once
}

// OpenTerminal puts the terminal in raw mode and enters the alternate
// screen. Close must be called to restore the terminal
func OpenTerminal(opts Options) (*Terminal, error) {
	opts = opts.withDefaults()
	vx, err := vaxis.New(vaxis.Options{
		ReportKeyboardEvents: opts.ReportKeyboardEvents,
		WithTTY:              opts.TTY,
	})
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	log.Debug("terminal opened")
	lbl := label.New("")
	lbl.Width = vx.RenderedWidth
	t := &Terminal{
		vx:     vx,
		label:  lbl,
		events: make(chan vaxis.Event),
		done:   make(chan struct{}),
	}
	go t.forward()
	return t, nil
}

// forward passes vaxis events on, replacing the QuitEvent vaxis posts when it
// closes itself with ErrTerminalClosed. Nothing is forwarded after that
func (t *Terminal) forward() {
	for {
		var ev vaxis.Event
		select {
		case e, ok := <-t.vx.Events():
			if !ok {
				close(t.events)
				return
			}
			ev = e
		case <-t.done:
			return
		}
		if _, ok := ev.(vaxis.QuitEvent); ok {
			log.Warn("vaxis closed the terminal")
			t.closed.Store(true)
			ev = ErrTerminalClosed
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
		if t.closed.Load() {
			return
		}
	}
}

func (t *Terminal) Render(text string) error {
	if t.closed.Load() {
		return ErrTerminalClosed
	}
	t.label.Text = text
	win := t.vx.Window()
	win.Clear()
	t.label.Draw(win)
	t.vx.Render()
	return nil
}

func (t *Terminal) Events() <-chan vaxis.Event {
	return t.events
}

// Close restores the terminal to the state it had before OpenTerminal. It
// is safe to call more than once, and after vaxis closed itself
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		if t.closed.Swap(true) {
			return
		}
		t.vx.Close()
		log.Debug("terminal restored")
	})
}

package tickview

import (
	"fmt"
	"strconv"

	"git.sr.ht/~rockorager/vaxis"

	"git.sr.ht/~rockorager/tickview/log"
)

// HandleEvent applies an input event. Events which implement error are
// returned wrapped. Only key presses change the state: releases, repeats,
// mouse and resize events are ignored.
func (a *App) HandleEvent(ev vaxis.Event) error {
	switch ev := ev.(type) {
	case error:
		return fmt.Errorf("input: %w", ev)
	case vaxis.Key:
		if ev.EventType != vaxis.EventPress {
			break
		}
		a.handleKey(ev)
	case vaxis.Mouse:
	case vaxis.Resize:
		log.Trace("resize %dx%d", ev.Cols, ev.Rows)
	}
	return nil
}

func (a *App) handleKey(key vaxis.Key) {
	switch {
	case isQuit(key):
		log.Debug("quit on %s", key)
		a.quit()
	case key.Keycode == 'a' && key.Modifiers&vaxis.ModShift == 0:
		a.state.Text = "a"
	}
}

// isQuit reports whether key is Escape with no modifiers, or Ctrl+c with or
// without Shift. Both cases of c are accepted
func isQuit(key vaxis.Key) bool {
	return key.Matches(vaxis.KeyEsc) ||
		key.Matches('c', vaxis.ModCtrl) ||
		key.Matches('C', vaxis.ModCtrl) ||
		key.Matches('c', vaxis.ModCtrl|vaxis.ModShift) ||
		key.Matches('C', vaxis.ModCtrl|vaxis.ModShift)
}

func (a *App) quit() {
	a.state.Running = false
}

// HandleTick shows the decimal value of a tick
func (a *App) HandleTick(v int) {
	log.Trace("tick %d", v)
	a.state.Text = strconv.Itoa(v)
}

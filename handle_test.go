package tickview

import (
	"errors"
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/stretchr/testify/assert"
)

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name    string
		key     vaxis.Key
		running bool
		text    string
	}{
		{
			name:    "escape",
			key:     vaxis.Key{Keycode: vaxis.KeyEsc},
			running: false,
			text:    "x",
		},
		{
			name:    "escape with caps lock",
			key:     vaxis.Key{Keycode: vaxis.KeyEsc, Modifiers: vaxis.ModCapsLock},
			running: false,
			text:    "x",
		},
		{
			name:    "shift+escape",
			key:     vaxis.Key{Keycode: vaxis.KeyEsc, Modifiers: vaxis.ModShift},
			running: true,
			text:    "x",
		},
		{
			name:    "ctrl+c",
			key:     vaxis.Key{Keycode: 'c', Modifiers: vaxis.ModCtrl},
			running: false,
			text:    "x",
		},
		{
			name:    "ctrl+C",
			key:     vaxis.Key{Keycode: 'C', Modifiers: vaxis.ModCtrl},
			running: false,
			text:    "x",
		},
		{
			name:    "ctrl+shift+c",
			key:     vaxis.Key{Keycode: 'c', Modifiers: vaxis.ModCtrl | vaxis.ModShift},
			running: false,
			text:    "x",
		},
		{
			name:    "ctrl+shift+C",
			key:     vaxis.Key{Keycode: 'C', Modifiers: vaxis.ModCtrl | vaxis.ModShift},
			running: false,
			text:    "x",
		},
		{
			name:    "ctrl+c with num lock",
			key:     vaxis.Key{Keycode: 'c', Modifiers: vaxis.ModCtrl | vaxis.ModNumLock},
			running: false,
			text:    "x",
		},
		{
			name:    "ctrl+alt+c",
			key:     vaxis.Key{Keycode: 'c', Modifiers: vaxis.ModCtrl | vaxis.ModAlt},
			running: true,
			text:    "x",
		},
		{
			name:    "c",
			key:     vaxis.Key{Keycode: 'c'},
			running: true,
			text:    "x",
		},
		{
			name:    "a",
			key:     vaxis.Key{Keycode: 'a'},
			running: true,
			text:    "a",
		},
		{
			name:    "shift+a",
			key:     vaxis.Key{Keycode: 'a', ShiftedCode: 'A', Text: "A", Modifiers: vaxis.ModShift},
			running: true,
			text:    "x",
		},
		{
			name:    "a with caps lock",
			key:     vaxis.Key{Keycode: 'a', Modifiers: vaxis.ModCapsLock},
			running: true,
			text:    "a",
		},
		{
			name:    "ctrl+a",
			key:     vaxis.Key{Keycode: 'a', Modifiers: vaxis.ModCtrl},
			running: true,
			text:    "a",
		},
		{
			name:    "b",
			key:     vaxis.Key{Keycode: 'b'},
			running: true,
			text:    "x",
		},
		{
			name:    "enter",
			key:     vaxis.Key{Keycode: vaxis.KeyEnter},
			running: true,
			text:    "x",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app := New()
			app.state.Text = "x"
			err := app.HandleEvent(test.key)
			assert.NoError(t, err)
			assert.Equal(t, State{Running: test.running, Text: test.text}, app.State())
		})
	}
}

func TestHandleKeyIgnoresNonPress(t *testing.T) {
	keys := []vaxis.Key{
		{Keycode: vaxis.KeyEsc},
		{Keycode: 'c', Modifiers: vaxis.ModCtrl},
		{Keycode: 'c', Modifiers: vaxis.ModCtrl | vaxis.ModShift},
		{Keycode: 'a'},
		{Keycode: 'z', Modifiers: vaxis.ModAlt},
	}
	for _, eventType := range []vaxis.EventType{vaxis.EventRelease, vaxis.EventRepeat} {
		for _, key := range keys {
			key.EventType = eventType
			app := New()
			app.state.Text = "x"
			assert.NoError(t, app.HandleEvent(key))
			assert.Equal(t, State{Running: true, Text: "x"}, app.State(), key.String())
		}
	}
}

func TestHandleKeyKeepsRunning(t *testing.T) {
	mods := []vaxis.ModifierMask{
		0,
		vaxis.ModShift,
		vaxis.ModAlt,
		vaxis.ModSuper,
		vaxis.ModAlt | vaxis.ModShift,
	}
	app := New()
	for r := rune(0x20); r < 0x7F; r += 1 {
		for _, mod := range mods {
			assert.NoError(t, app.HandleEvent(vaxis.Key{Keycode: r, Modifiers: mod}))
		}
	}
	for r := 'a'; r <= 'z'; r += 1 {
		if r == 'c' {
			continue
		}
		assert.NoError(t, app.HandleEvent(vaxis.Key{Keycode: r, Modifiers: vaxis.ModCtrl}))
	}
	assert.True(t, app.State().Running)
	assert.Equal(t, "a", app.State().Text)
}

func TestHandleIgnored(t *testing.T) {
	events := []vaxis.Event{
		vaxis.Mouse{Col: 3, Row: 4},
		vaxis.Resize{Cols: 80, Rows: 24},
		struct{}{},
		nil,
	}
	for _, ev := range events {
		app := New()
		app.state.Text = "42"
		before := app.State()
		assert.NoError(t, app.HandleEvent(ev))
		assert.Equal(t, before, app.State())
	}
}

func TestHandleError(t *testing.T) {
	errRead := errors.New("read failed")
	app := New()
	err := app.HandleEvent(errRead)
	assert.ErrorIs(t, err, errRead)
	assert.True(t, app.State().Running)
}

func TestHandleTick(t *testing.T) {
	tests := []struct {
		name string
		tick int
	}{
		{
			name: "0",
			tick: 0,
		},
		{
			name: "42",
			tick: 42,
		},
		{
			name: "137",
			tick: 137,
		},
		{
			name: "-1",
			tick: -1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app := New()
			app.state.Text = "a"
			app.HandleTick(test.tick)
			assert.Equal(t, State{Running: true, Text: test.name}, app.State())
		})
	}
}

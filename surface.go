package tickview

import "git.sr.ht/~rockorager/vaxis"

// Surface is where the App draws its state
type Surface interface {
	// Render draws text and flushes it to the display. Any error is fatal
	// to the App
	Render(text string) error
}

// Input is a source of input events. Events are delivered in order on the
// channel; a closed channel means the source is exhausted. A read failure is
// delivered as an event which implements error
type Input interface {
	Events() <-chan vaxis.Event
}

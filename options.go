package tickview

import "time"

const (
	DefaultTickInterval = 3 * time.Second
	DefaultTickBuffer   = 137
)

// Options provide setup options to the Ticker and the Terminal
type Options struct {
	// TickInterval is the time the Ticker sleeps after each tick. Default
	// is 3 seconds
	TickInterval time.Duration

	// TickBuffer is the capacity of the tick channel. Default is 137
	TickBuffer int

	// ReportKeyboardEvents asks the terminal to report key release and
	// repeat events when it supports the kitty keyboard protocol. The App
	// receives them and ignores them
	ReportKeyboardEvents bool

	// TTY is the path of the terminal device to use. Default is the
	// controlling terminal
	TTY string
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.TickBuffer <= 0 {
		o.TickBuffer = DefaultTickBuffer
	}
	return o
}

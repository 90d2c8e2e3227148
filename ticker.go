package tickview

import (
	"context"
	"time"

	"git.sr.ht/~rockorager/tickview/log"
)

// Ticker sends 0, 1, 2, ... on a buffered channel, sleeping a fixed interval
// after each value. A full channel blocks the Ticker; values are never
// dropped.
type Ticker struct {
	interval time.Duration
	ch       chan int
}

// NewTicker creates a Ticker from the TickInterval and TickBuffer of opts
func NewTicker(opts Options) *Ticker {
	opts = opts.withDefaults()
	return &Ticker{
		interval: opts.TickInterval,
		ch:       make(chan int, opts.TickBuffer),
	}
}

// Ticks is the channel the values are sent on. It is closed when Run returns
func (t *Ticker) Ticks() <-chan int {
	return t.ch
}

// Run sends values until ctx is done, then closes the tick channel and
// returns nil. Run must be called once
func (t *Ticker) Run(ctx context.Context) error {
	defer close(t.ch)
	for n := 0; ; n += 1 {
		select {
		case t.ch <- n:
		case <-ctx.Done():
			log.Debug("ticker stopped before sending %d", n)
			return nil
		}

		timer := time.NewTimer(t.interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			log.Debug("ticker stopped after sending %d", n)
			return nil
		}
	}
}

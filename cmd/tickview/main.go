package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/tickview"
	"git.sr.ht/~rockorager/tickview/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tickview: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	// Logs are kept in memory while the terminal is in raw mode and only
	// printed when something went wrong
	logBuf := bytes.NewBuffer(nil)
	log.SetOutput(logBuf)
	log.SetLevel(log.LevelDebug)
	defer func() {
		if err != nil {
			os.Stderr.Write(logBuf.Bytes())
		}
	}()

	opts := tickview.Options{}
	t, err := tickview.OpenTerminal(opts)
	if err != nil {
		return err
	}
	defer t.Close()

	ticker := tickview.NewTicker(opts)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var group errgroup.Group
	group.Go(func() error {
		return ticker.Run(ctx)
	})
	group.Go(func() error {
		defer cancel()
		return tickview.New().Run(t, t, ticker.Ticks())
	})
	return group.Wait()
}

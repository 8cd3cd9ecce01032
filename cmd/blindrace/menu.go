package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// signalContext is cancelled when the process is asked to stop or loses
// its terminal.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menuLoop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menuLoop() error {
	e, err := newEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	frontend, err := e.frontend()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	// Menu loop
	for ctx.Err() == nil {
		menuResult, err := frontend.Menu()
		if err != nil {
			return err
		}
		if menuResult.Quit {
			break
		}

		e.logger.Info("difficulty selected", "level", menuResult.Level)
		if err := e.playLoop(ctx, frontend, menuResult.Level); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
	}

	e.logger.Info("goodbye")
	return nil
}

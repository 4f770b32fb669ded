package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/san-kum/hanoisim/internal/cli"
	"github.com/san-kum/hanoisim/internal/config"
	"github.com/san-kum/hanoisim/internal/gui"
	"github.com/san-kum/hanoisim/internal/presenter"
)

// main registers the raylib window as the "gui" display and runs the CLI.
// It exits with status 130 when interrupted and 1 on any other error.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.RegisterDisplay("gui", func(cfg *config.Config, logger *log.Logger) (presenter.Display, error) {
		w, err := gui.Open(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}
		return w, nil
	})

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

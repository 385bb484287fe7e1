package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/terminal"
)

// RunApp - runs the application on the process's stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game manager to a terminal on in and out and blocks until it stops.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	gameManager := usecase.NewGameManager(logger)
	renderer := terminal.Renderer{
		EmptySymbol: conf.Terminal.EmptySymbol,
		ShowIndexes: conf.Terminal.ShowIndexes,
	}

	log.Info("Starting terminal", "game_id", gameManager.GameID())

	server := terminal.New(logger, renderer, in, out, gameManager)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Terminal stopped, shutting down")

	return nil
}

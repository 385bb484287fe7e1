package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// Server is the hot-seat presentation loop: it reads commands from in and renders the game to out.
type Server struct {
	logger   *slog.Logger
	renderer Renderer

	in  io.Reader
	out io.Writer

	gameUseCase usecase.GameUseCase
}

func New(logger *slog.Logger, renderer Renderer, in io.Reader, out io.Writer, gameUseCase usecase.GameUseCase) *Server {
	return &Server{
		logger:      logger.With("component", "terminal"),
		renderer:    renderer,
		in:          in,
		out:         out,
		gameUseCase: gameUseCase,
	}
}

// Start - runs until the input ends, the user quits or ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go that.readLines(ctx, lines, readErr)

	if err := that.renderer.Render(that.out, that.gameUseCase.State()); err != nil {
		return err
	}

	for {
		if err := that.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			that.logger.Info("context canceled, stopping terminal")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			that.logger.Info("input closed")
			return nil
		case line := <-lines:
			quit, err := that.handleLine(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (that *Server) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	readErr <- scanner.Err()
}

// handleLine - processes one command. It reports whether the user asked to quit.
func (that *Server) handleLine(line string) (bool, error) {
	log := that.logger.With("method", "handleLine")

	cmd, err := ParseCommand(line)
	if err != nil {
		log.Debug("unknown command", "error", err)
		return false, that.printf("unknown command %q, type \"help\" for the list of commands\n", line)
	}

	switch cmd.Action {
	case ActionQuit:
		return true, nil
	case ActionHelp:
		return false, that.printf("%s", helpText)
	case ActionNew:
		return false, that.renderer.Render(that.out, that.gameUseCase.NewGame())
	}

	snapshot, err := that.gameUseCase.MakeTurn(cmd.Cell)
	if err != nil {
		if msgErr := that.printf("%s\n", rejectionMessage(err)); msgErr != nil {
			return false, msgErr
		}
	}

	return false, that.renderer.Render(that.out, snapshot)
}

func (that *Server) prompt() error {
	return that.printf("> ")
}

func (that *Server) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		return "no such cell, pick 0-8"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is taken"
	case errors.Is(err, apperror.ErrGameFinished):
		return "the game is over, type \"new\" to play again"
	default:
		return err.Error()
	}
}

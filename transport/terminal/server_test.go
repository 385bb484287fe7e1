package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

func newTestServer(in io.Reader, out io.Writer) (*Server, *usecase.GameManager) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger)

	return New(logger, Renderer{EmptySymbol: "."}, in, out, manager), manager
}

func TestServer_Start(t *testing.T) {
	t.Run("Plays a game to a win", func(t *testing.T) {
		// Given: input playing X along the top row
		in := strings.NewReader("0\n3\n1\n4\n2\n5\n")
		out := &bytes.Buffer{}
		server, manager := newTestServer(in, out)

		// When: the loop runs until input ends
		err := server.Start(context.Background())

		// Then: X wins and the move after the win is refused
		require.NoError(t, err)
		assert.Equal(t, entity.Won(entity.PlayerX), manager.State().Outcome)
		assert.Equal(t, entity.Empty, manager.State().Board[5])
		assert.Contains(t, out.String(), "Winner: X")
		assert.Contains(t, out.String(), "the game is over")
	})

	t.Run("Rejections and unknown input", func(t *testing.T) {
		in := strings.NewReader("4\n4\n9\nfoo\nhelp\nquit\n7\n")
		out := &bytes.Buffer{}
		server, manager := newTestServer(in, out)

		err := server.Start(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "that cell is taken")
		assert.Contains(t, out.String(), "no such cell")
		assert.Contains(t, out.String(), `unknown command "foo"`)
		assert.Contains(t, out.String(), "start a new game")

		// Then: input after quit is not processed
		state := manager.State()
		assert.Equal(t, entity.MarkedX, state.Board[4])
		assert.Equal(t, entity.Empty, state.Board[7])
		assert.Equal(t, entity.PlayerO, state.Turn)
	})

	t.Run("New game replaces the board", func(t *testing.T) {
		in := strings.NewReader("0\n1\nnew\n")
		out := &bytes.Buffer{}
		server, manager := newTestServer(in, out)

		err := server.Start(context.Background())

		require.NoError(t, err)
		assert.Equal(t, entity.NewGame().Snapshot(), manager.State())
	})

	t.Run("Stops on context cancel", func(t *testing.T) {
		// Given: input that never delivers a line
		in, writer := io.Pipe()
		defer writer.Close()

		server, _ := newTestServer(in, io.Discard)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- server.Start(ctx)
		}()

		// When: the context is cancelled
		cancel()

		// Then: the loop returns
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("server did not stop")
		}
	})
}

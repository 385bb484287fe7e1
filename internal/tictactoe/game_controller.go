package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn - places the mark of the player to move on cell and passes the turn.
// The game is taken and returned by value; on error the returned game equals the input.
func MakeTurn(game entity.Game, cell int) (entity.Game, error) {
	if err := validateMove(game, cell); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = game.Turn.Mark()
	game.Turn = game.Turn.Next()

	return game, nil
}

// validateMove - checks if the move is valid.
func validateMove(game entity.Game, cell int) error {
	if !entity.IsValidIndex(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if entity.CalculateOutcome(game.Board).IsWon() {
		return apperror.ErrGameFinished
	}

	if game.Board[cell] != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// GameController owns the current game. Callers only ever see snapshots.
type GameController struct {
	game entity.Game
}

func NewGameController() *GameController {
	return &GameController{
		game: entity.NewGame(),
	}
}

// AttemptMove - applies a move for the player to move. A rejected move leaves the game untouched
// and returns the current snapshot alongside the reason.
func (that *GameController) AttemptMove(cell int) (entity.Snapshot, error) {
	next, err := MakeTurn(that.game, cell)
	if err != nil {
		return that.game.Snapshot(), err
	}

	that.game = next

	return that.game.Snapshot(), nil
}

func (that *GameController) CurrentState() entity.Snapshot {
	return that.game.Snapshot()
}

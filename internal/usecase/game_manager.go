package usecase

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type GameUseCase interface {
	GameID() string
	State() entity.Snapshot
	MakeTurn(cell int) (entity.Snapshot, error)
	NewGame() entity.Snapshot
}

// GameManager runs one game at a time and logs what happens to it.
type GameManager struct {
	logger *slog.Logger

	gameID     string
	controller *tictactoe.GameController
}

func NewGameManager(logger *slog.Logger) *GameManager {
	that := &GameManager{
		logger: logger.With("component", "game_manager"),
	}
	that.reset()

	return that
}

func (that *GameManager) GameID() string {
	return that.gameID
}

func (that *GameManager) State() entity.Snapshot {
	return that.controller.CurrentState()
}

// MakeTurn - forwards the move to the engine. Rejections are logged and returned with the unchanged snapshot.
func (that *GameManager) MakeTurn(cell int) (entity.Snapshot, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", that.gameID, "cell", cell)

	player := that.controller.CurrentState().Turn

	snapshot, err := that.controller.AttemptMove(cell)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrInvalidCell):
			log.Warn("move rejected", "reason", "invalid_cell", "error", err)
		case errors.Is(err, apperror.ErrGameFinished):
			log.Info("move rejected", "reason", "game_finished")
		case errors.Is(err, apperror.ErrCellOccupied):
			log.Info("move rejected", "reason", "cell_occupied")
		default:
			log.Error("move rejected", "error", err)
		}

		return snapshot, err
	}

	log.Debug("move accepted", "player", player, "board", snapshot.Board.String())

	if snapshot.Outcome.IsWon() {
		log.Info("game won", "winner", snapshot.Outcome.Winner)
	}

	return snapshot, nil
}

// NewGame - replaces the current game with a fresh one.
func (that *GameManager) NewGame() entity.Snapshot {
	previous := that.gameID
	that.reset()

	that.logger.Info("new game", "game_id", that.gameID, "previous_game_id", previous)

	return that.controller.CurrentState()
}

func (that *GameManager) reset() {
	that.gameID = uuid.NewString()
	that.controller = tictactoe.NewGameController()
}

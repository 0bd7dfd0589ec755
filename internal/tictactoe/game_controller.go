package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInvalidPlayers = errors.New("invalid players")

// GameController - state machine of a single game. It owns its board and is
// discarded once the game reaches a terminal state.
type GameController struct {
	board entity.Board

	// players[0] opens the game, turn indexes the current turn holder.
	players [2]*entity.Player
	turn    int

	lastMover *entity.Player
	moves     int
	state     entity.State
}

// NewGame - creates a game between first and second where firstMover moves first.
func NewGame(first, second, firstMover *entity.Player) (*GameController, error) {
	if err := validatePlayers(first, second, firstMover); err != nil {
		return nil, err
	}

	players := [2]*entity.Player{first, second}
	if firstMover.ID == second.ID {
		players = [2]*entity.Player{second, first}
	}

	return &GameController{
		players: players,
		state:   entity.State{Status: entity.StatusOngoing},
	}, nil
}

func validatePlayers(first, second, firstMover *entity.Player) error {
	if first == nil || second == nil || firstMover == nil {
		return fmt.Errorf("%w: two players and a first mover are required", ErrInvalidPlayers)
	}

	if first.ID == second.ID {
		return fmt.Errorf("%w: same player twice", ErrInvalidPlayers)
	}

	if first.Mark == entity.EmptyCell || second.Mark == entity.EmptyCell || first.Mark == second.Mark {
		return fmt.Errorf("%w: marks %q and %q", ErrInvalidPlayers, first.Mark, second.Mark)
	}

	if firstMover.ID != first.ID && firstMover.ID != second.ID {
		return fmt.Errorf("%w: first mover %s", apperror.ErrUnknownPlayer, firstMover.ID)
	}

	return nil
}

// ApplyMove - places player's mark at (row, col) and advances the game.
// A rejected move leaves the game untouched.
func (that *GameController) ApplyMove(player *entity.Player, row, col int) (entity.State, error) {
	if err := that.validateMove(player); err != nil {
		return that.state, err
	}

	if err := that.board.Set(row, col, player.Mark); err != nil {
		return that.state, fmt.Errorf("invalid turn: %w", err)
	}

	that.moves++
	that.lastMover = player
	that.updateGameStatus(player, entity.Cell{Row: row, Col: col})

	return that.state, nil
}

// validateMove - checks that the game is running and player holds the turn.
func (that *GameController) validateMove(player *entity.Player) error {
	if that.state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if player == nil || player.ID != that.CurrentPlayer().ID {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *GameController) updateGameStatus(player *entity.Player, last entity.Cell) {
	switch {
	case entity.IsWinningMove(&that.board, last, player.Mark):
		that.state = entity.State{Status: entity.StatusWon, Winner: player}
	case that.moves == entity.CellsCount:
		that.state = entity.State{Status: entity.StatusDrawn}
	default:
		that.turn = 1 - that.turn
	}
}

// CurrentPlayer - the player expected to move next. After a terminal state it
// stays on the player who finished the game.
func (that *GameController) CurrentPlayer() *entity.Player {
	return that.players[that.turn]
}

// Opponent - the other participant of player.
func (that *GameController) Opponent(player *entity.Player) *entity.Player {
	if player.ID == that.players[0].ID {
		return that.players[1]
	}

	return that.players[0]
}

// FirstMover - the player who opened the game.
func (that *GameController) FirstMover() *entity.Player {
	return that.players[0]
}

func (that *GameController) LastMover() *entity.Player {
	return that.lastMover
}

func (that *GameController) MoveCount() int {
	return that.moves
}

func (that *GameController) State() entity.State {
	return that.state
}

// Board - copy of the current board.
func (that *GameController) Board() entity.Board {
	return that.board
}

// Snapshot - cell contents for display.
func (that *GameController) Snapshot() [entity.BoardSize][entity.BoardSize]entity.Mark {
	return that.board.Rows()
}

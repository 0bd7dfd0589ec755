package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrGameInProgress    = errors.New("game is still in progress")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownPlayer     = errors.New("player is not part of this game")
)

// IsRecoverable - reports whether a rejected move can be retried by the same player.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrInvalidCell)
}

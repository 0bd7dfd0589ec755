package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type botService interface {
	SelectMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Cell, error)
}

// MoveReader - supplies the moves of human players. The returned cell is
// already converted to zero based coordinates.
type MoveReader interface {
	ReadMove(ctx context.Context, player *entity.Player, snapshot [entity.BoardSize][entity.BoardSize]entity.Mark) (entity.Cell, error)
}

// Score - results of the games finished in this match.
type Score struct {
	Games int
	Draws int
	Wins  map[string]int
}

// GameManager - runs a match between two players: one game at a time, with
// rematches that swap marks and hand the opening move to the other player.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	players    [2]*entity.Player
	firstMover int

	game  *tictactoe.GameController
	score Score
}

func NewGameManager(logger *slog.Logger, bot botService, first, second *entity.Player) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		bot:    bot,

		players: [2]*entity.Player{first, second},
		score:   Score{Wins: make(map[string]int)},
	}
}

// StartGame - replaces the current game with a fresh one.
func (that *GameManager) StartGame() (*tictactoe.GameController, error) {
	first := that.players[that.firstMover]

	game, err := tictactoe.NewGame(that.players[0], that.players[1], first)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.game = game
	that.logger.Info("game started",
		"first_mover", first.Name,
		"marks", fmt.Sprintf("%s=%s %s=%s",
			that.players[0].Name, that.players[0].Mark, that.players[1].Name, that.players[1].Mark),
	)

	return game, nil
}

// PlayTurn - asks the current player for a move and applies it. Rejected moves
// are returned as errors, the turn stays with the same player.
func (that *GameManager) PlayTurn(ctx context.Context, reader MoveReader) (entity.State, error) {
	log := that.logger.With("method", "PlayTurn")

	if that.game == nil {
		return entity.State{}, apperror.ErrGameIsNotStarted
	}

	if state := that.game.State(); state.IsFinished() {
		return state, apperror.ErrGameFinished
	}

	player := that.game.CurrentPlayer()

	cell, err := that.nextMove(ctx, reader, player)
	if err != nil {
		return that.game.State(), err
	}

	state, err := that.game.ApplyMove(player, cell.Row, cell.Col)
	if err != nil {
		log.Warn("move rejected", "player", player.Name, "cell", cell.String(), "error", err)
		return state, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move applied", "player", player.Name, "cell", cell.String(), "moves", that.game.MoveCount())

	if state.IsFinished() {
		that.recordResult(state)
	}

	return state, nil
}

func (that *GameManager) nextMove(ctx context.Context, reader MoveReader, player *entity.Player) (entity.Cell, error) {
	if player.IsBot() {
		cell, err := that.bot.SelectMove(that.game.Board(), player.Mark, player.Difficulty)
		if err != nil {
			return entity.Cell{}, fmt.Errorf("bot failed to make turn: %w", err)
		}

		return cell, nil
	}

	if reader == nil {
		return entity.Cell{}, fmt.Errorf("no move reader for player %s", player.Name)
	}

	cell, err := reader.ReadMove(ctx, player, that.game.Snapshot())
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to read move: %w", err)
	}

	return cell, nil
}

func (that *GameManager) recordResult(state entity.State) {
	log := that.logger.With("method", "recordResult")

	that.score.Games++

	if state.IsDraw() {
		that.score.Draws++
		log.Info("game finished", "result", "draw", "moves", that.game.MoveCount())
		return
	}

	that.score.Wins[state.Winner.ID]++
	log.Info("game finished", "result", "win", "winner", state.Winner.Name, "moves", that.game.MoveCount())
}

// Rematch - swaps marks, passes the opening move to the other player and starts
// a new game. The previous game must be finished.
func (that *GameManager) Rematch() (*tictactoe.GameController, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	if !that.game.State().IsFinished() {
		return nil, apperror.ErrGameInProgress
	}

	entity.SwapMarks(that.players[0], that.players[1])
	that.firstMover = 1 - that.firstMover

	return that.StartGame()
}

// Game - the current game, nil before StartGame.
func (that *GameManager) Game() *tictactoe.GameController {
	return that.game
}

func (that *GameManager) Players() [2]*entity.Player {
	return that.players
}

// Score - copy of the results so far.
func (that *GameManager) Score() Score {
	wins := make(map[string]int, len(that.score.Wins))
	for id, count := range that.score.Wins {
		wins[id] = count
	}

	return Score{
		Games: that.score.Games,
		Draws: that.score.Draws,
		Wins:  wins,
	}
}

package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Random - uniform integer source in [0, n).
type Random interface {
	Intn(n int) int
}

// NewRandom - seeded source, seed 0 seeds from the clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // game moves, not secrets
}

var (
	center  = entity.Cell{Row: 1, Col: 1}
	corners = []entity.Cell{
		{Row: 0, Col: 0},
		{Row: 0, Col: 2},
		{Row: 2, Col: 0},
		{Row: 2, Col: 2},
	}
)

type BotService interface {
	SelectMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Cell, error)
	BestMove(board entity.Board, mark entity.Mark) (entity.Cell, bool)
	RandomMove(board entity.Board) (entity.Cell, error)
}

type botService struct {
	random Random
}

func NewBotService(random Random) BotService {
	return &botService{
		random: random,
	}
}

// SelectMove - picks an empty cell for mark. The difficulty decides how often the
// rule chain is consulted instead of a random pick.
func (that *botService) SelectMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Cell, error) {
	if board.IsFull() {
		return entity.Cell{}, apperror.ErrNoAvailableMoves
	}

	useRules, err := that.useRules(difficulty)
	if err != nil {
		return entity.Cell{}, err
	}

	if useRules {
		if cell, ok := that.BestMove(board, mark); ok {
			return cell, nil
		}
	}

	return that.RandomMove(board)
}

// useRules - easy never, medium 2 out of 3, hard 4 out of 5, impossible always.
func (that *botService) useRules(difficulty entity.Difficulty) (bool, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return false, nil
	case entity.DifficultyMedium:
		return that.random.Intn(3) > 0, nil
	case entity.DifficultyHard:
		return that.random.Intn(5) > 0, nil
	case entity.DifficultyImpossible:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// BestMove - win now, block, center, first free corner. Reports false when no
// rule applies.
func (that *botService) BestMove(board entity.Board, mark entity.Mark) (entity.Cell, bool) {
	var (
		block    entity.Cell
		hasBlock bool
	)

	for _, line := range entity.WinLines {
		empty, owner, ok := nearlyComplete(&board, line)
		if !ok {
			continue
		}

		if owner == mark {
			return empty, true
		}

		// the last blocking line found wins
		block, hasBlock = empty, true
	}

	if hasBlock {
		return block, true
	}

	if board.Get(center.Row, center.Col) == entity.EmptyCell {
		return center, true
	}

	for _, corner := range corners {
		if board.Get(corner.Row, corner.Col) == entity.EmptyCell {
			return corner, true
		}
	}

	return entity.Cell{}, false
}

// nearlyComplete - a line with one empty cell and two cells of the same mark.
func nearlyComplete(board *entity.Board, line [3]int) (entity.Cell, entity.Mark, bool) {
	var (
		empty  []int
		marked []entity.Mark
	)

	for _, index := range line {
		if board[index] == entity.EmptyCell {
			empty = append(empty, index)
		} else {
			marked = append(marked, board[index])
		}
	}

	if len(empty) != 1 || marked[0] != marked[1] {
		return entity.Cell{}, entity.EmptyCell, false
	}

	return entity.CellFromIndex(empty[0]), marked[0], true
}

func (that *botService) RandomMove(board entity.Board) (entity.Cell, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.random.Intn(len(availableCells))], nil
}

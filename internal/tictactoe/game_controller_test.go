package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func newPlayers() (*entity.Player, *entity.Player) {
	return entity.NewPlayer("Ana", entity.PlayerX), entity.NewPlayer("Bob", entity.PlayerO)
}

// play - applies moves alternately starting with the current player.
func play(t *testing.T, game *GameController, cells ...entity.Cell) entity.State {
	t.Helper()

	var state entity.State
	for i, cell := range cells {
		var err error
		state, err = game.ApplyMove(game.CurrentPlayer(), cell.Row, cell.Col)
		require.NoError(t, err, "move %d at %s", i, cell)
	}

	return state
}

func TestNewGame(t *testing.T) {
	t.Run("Starts ongoing with the first mover to play", func(t *testing.T) {
		// Given: two players where the second one opens
		ana, bob := newPlayers()

		// When: creating the game
		game, err := NewGame(ana, bob, bob)

		// Then: the game is ongoing, empty and bob holds the turn
		require.NoError(t, err)
		assert.Equal(t, entity.State{Status: entity.StatusOngoing}, game.State())
		assert.Equal(t, bob, game.CurrentPlayer())
		assert.Equal(t, bob, game.FirstMover())
		assert.Equal(t, ana, game.Opponent(bob))
		assert.Equal(t, 0, game.MoveCount())
		assert.Nil(t, game.LastMover())
		assert.Equal(t, entity.Board{}, game.Board())
	})

	t.Run("Rejects players sharing a mark", func(t *testing.T) {
		ana := entity.NewPlayer("Ana", entity.PlayerX)
		bob := entity.NewPlayer("Bob", entity.PlayerX)

		_, err := NewGame(ana, bob, ana)

		require.ErrorIs(t, err, ErrInvalidPlayers)
	})

	t.Run("Rejects the same player twice", func(t *testing.T) {
		ana, _ := newPlayers()

		_, err := NewGame(ana, ana, ana)

		require.ErrorIs(t, err, ErrInvalidPlayers)
	})

	t.Run("Rejects a first mover outside the game", func(t *testing.T) {
		ana, bob := newPlayers()
		stranger := entity.NewPlayer("Eve", entity.PlayerX)

		_, err := NewGame(ana, bob, stranger)

		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})
}

func TestGameController_ApplyMove(t *testing.T) {
	t.Run("Valid move marks the cell and passes the turn", func(t *testing.T) {
		// Given: a new game opened by ana
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)

		// When: ana plays the center
		state, err := game.ApplyMove(ana, 1, 1)

		// Then: the board, counters and turn are updated
		require.NoError(t, err)
		assert.True(t, state.IsOngoing())
		assert.Equal(t, entity.PlayerX, game.Board().Get(1, 1))
		assert.Equal(t, 1, game.MoveCount())
		assert.Equal(t, ana, game.LastMover())
		assert.Equal(t, bob, game.CurrentPlayer())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where it's ana's turn
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)

		// When: bob tries to move
		_, err = game.ApplyMove(bob, 0, 0)

		// Then: ErrNotYourTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board())
		assert.Equal(t, 0, game.MoveCount())
		assert.Equal(t, ana, game.CurrentPlayer())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: ana has taken (0,0)
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)
		play(t, game, entity.Cell{Row: 0, Col: 0})
		before := game.Board()

		// When: bob tries the same cell
		_, err = game.ApplyMove(bob, 0, 0)

		// Then: ErrCellOccupied is returned and bob keeps the turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, game.Board())
		assert.Equal(t, 1, game.MoveCount())
		assert.Equal(t, bob, game.CurrentPlayer())
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)

		_, err = game.ApplyMove(ana, -1, 3)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, 0, game.MoveCount())
	})

	t.Run("Row win after the third mark", func(t *testing.T) {
		// Given: X plays the top row while O plays (1,0) and (1,1)
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)

		// When: X completes the row
		state := play(t, game,
			entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 1, Col: 0},
			entity.Cell{Row: 0, Col: 1}, entity.Cell{Row: 1, Col: 1},
			entity.Cell{Row: 0, Col: 2},
		)

		// Then: the game is won by X
		assert.Equal(t, entity.State{Status: entity.StatusWon, Winner: ana}, state)
		assert.Equal(t, 5, game.MoveCount())
	})

	t.Run("Draw exactly at the ninth move", func(t *testing.T) {
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)

		// X: (0,0),(0,2),(1,2),(2,1),(2,0)  O: (0,1),(1,0),(1,1),(2,2)
		moves := []entity.Cell{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 0, Col: 2}, {Row: 1, Col: 0},
			{Row: 1, Col: 2}, {Row: 1, Col: 1},
			{Row: 2, Col: 1}, {Row: 2, Col: 2},
			{Row: 2, Col: 0},
		}

		for i, cell := range moves {
			state, err := game.ApplyMove(game.CurrentPlayer(), cell.Row, cell.Col)
			require.NoError(t, err)

			if i < len(moves)-1 {
				require.True(t, state.IsOngoing(), "move %d", i)
				continue
			}

			assert.Equal(t, entity.State{Status: entity.StatusDrawn}, state)
		}

		assert.Equal(t, entity.CellsCount, game.MoveCount())
	})

	t.Run("Error on moving after the game finished", func(t *testing.T) {
		ana, bob := newPlayers()
		game, err := NewGame(ana, bob, ana)
		require.NoError(t, err)
		play(t, game,
			entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 1, Col: 0},
			entity.Cell{Row: 0, Col: 1}, entity.Cell{Row: 1, Col: 1},
			entity.Cell{Row: 0, Col: 2},
		)

		_, err = game.ApplyMove(bob, 2, 2)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, 5, game.MoveCount())
	})
}

func TestGameController_Alternation(t *testing.T) {
	// Given: a game opened by bob
	ana, bob := newPlayers()
	game, err := NewGame(ana, bob, bob)
	require.NoError(t, err)

	// When: every cell is tried in order by whoever holds the turn
	previous := (*entity.Player)(nil)
	for i := 0; i < entity.CellsCount && game.State().IsOngoing(); i++ {
		mover := game.CurrentPlayer()
		cell := entity.CellFromIndex(i)

		_, err = game.ApplyMove(mover, cell.Row, cell.Col)
		require.NoError(t, err)

		// Then: nobody moves twice in a row and the counter grows by one
		if previous != nil {
			assert.NotEqual(t, previous.ID, mover.ID)
		}
		assert.Equal(t, i+1, game.MoveCount())
		assert.Equal(t, i+1, game.Board().Filled())
		previous = mover
	}

	assert.LessOrEqual(t, game.MoveCount(), entity.CellsCount)
}

func TestGameController_Snapshot(t *testing.T) {
	ana, bob := newPlayers()
	game, err := NewGame(ana, bob, ana)
	require.NoError(t, err)
	play(t, game, entity.Cell{Row: 2, Col: 0}, entity.Cell{Row: 0, Col: 2})

	snapshot := game.Snapshot()

	assert.Equal(t, entity.PlayerX, snapshot[2][0])
	assert.Equal(t, entity.PlayerO, snapshot[0][2])
	assert.Equal(t, entity.EmptyCell, snapshot[1][1])
}

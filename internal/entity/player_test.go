package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestParseDifficulty(t *testing.T) {
	t.Run("Accepts every tier regardless of case and spaces", func(t *testing.T) {
		for input, expected := range map[string]Difficulty{
			"easy":         DifficultyEasy,
			"Medium":       DifficultyMedium,
			" HARD ":       DifficultyHard,
			"impossible\n": DifficultyImpossible,
		} {
			difficulty, err := ParseDifficulty(input)

			require.NoError(t, err)
			assert.Equal(t, expected, difficulty)
		}
	})

	t.Run("Rejects unknown tiers", func(t *testing.T) {
		_, err := ParseDifficulty("nightmare")

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})
}

func TestNewPlayer(t *testing.T) {
	t.Run("Human players get distinct identities", func(t *testing.T) {
		first := NewPlayer("Ana", PlayerX)
		second := NewPlayer("Ana", PlayerO)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.False(t, first.IsBot())
	})

	t.Run("Bot player carries its difficulty", func(t *testing.T) {
		bot := NewBotPlayer(PlayerO, DifficultyHard)

		assert.True(t, bot.IsBot())
		assert.Equal(t, BotName, bot.Name)
		assert.Equal(t, DifficultyHard, bot.Difficulty)
		assert.Equal(t, PlayerO, bot.Mark)
	})
}

func TestSwapMarks(t *testing.T) {
	// Given: two players after a finished game
	first := NewPlayer("Ana", PlayerX)
	second := NewBotPlayer(PlayerO, DifficultyEasy)
	firstID, secondID := first.ID, second.ID

	// When: marks are swapped for the rematch
	SwapMarks(first, second)

	// Then: identities are kept and symbols are inverted
	assert.Equal(t, firstID, first.ID)
	assert.Equal(t, secondID, second.ID)
	assert.Equal(t, PlayerO, first.Mark)
	assert.Equal(t, PlayerX, second.Mark)
}

func TestState(t *testing.T) {
	assert.True(t, State{Status: StatusOngoing}.IsOngoing())
	assert.True(t, State{Status: StatusWon}.IsFinished())
	assert.True(t, State{Status: StatusDrawn}.IsFinished())
	assert.True(t, State{Status: StatusDrawn}.IsDraw())
	assert.False(t, State{Status: StatusOngoing}.IsFinished())
}

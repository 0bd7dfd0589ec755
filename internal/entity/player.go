package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BotName = "Computer"

type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyImpossible Difficulty = "impossible"
)

// Difficulties - in menu order.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyImpossible,
}

func ParseDifficulty(value string) (Difficulty, error) {
	candidate := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	for _, difficulty := range Difficulties {
		if difficulty == candidate {
			return difficulty, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
}

type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Mark       Mark       `json:"mark,omitempty"`
	Bot        bool       `json:"bot,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Mark: mark,
	}
}

func NewBotPlayer(mark Mark, difficulty Difficulty) *Player {
	return &Player{
		ID:         uuid.NewString(),
		Name:       BotName,
		Mark:       mark,
		Bot:        true,
		Difficulty: difficulty,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}

// SwapMarks - exchanges the marks of two players, identities stay put.
func SwapMarks(first, second *Player) {
	first.Mark, second.Mark = second.Mark, first.Mark
}

package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "\n----------\n"

// Render - draws the board, empty cells show the number used to pick them.
func Render(snapshot [entity.BoardSize][entity.BoardSize]entity.Mark) string {
	rows := make([]string, 0, entity.BoardSize)

	for row, marks := range snapshot {
		cells := make([]string, 0, entity.BoardSize)
		for col, mark := range marks {
			if mark == entity.EmptyCell {
				cells = append(cells, strconv.Itoa(entity.Cell{Row: row, Col: col}.Index()+1))
				continue
			}
			cells = append(cells, string(mark))
		}
		rows = append(rows, strings.Join(cells, " | "))
	}

	return strings.Join(rows, rowSeparator)
}

// ParseCell - maps the 1..9 number typed by a player to a board cell.
func ParseCell(input string) (entity.Cell, error) {
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidCell, input)
	}

	if number < 1 || number > entity.CellsCount {
		return entity.Cell{}, fmt.Errorf("%w: %d is out of range", apperror.ErrInvalidCell, number)
	}

	return entity.CellFromIndex(number - 1), nil
}

// ResultMessage - text shown when a game ends.
func ResultMessage(state entity.State) string {
	switch {
	case state.IsDraw():
		return "Tie..."
	case state.IsWon() && state.Winner.IsBot():
		return "Ohhh, you lost!"
	case state.IsWon():
		return fmt.Sprintf("Nice %s, you won!", state.Winner.Name)
	default:
		return ""
	}
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

const (
	BoardSize  = 3
	CellsCount = BoardSize * BoardSize
)

// Cell - zero based board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func CellFromIndex(index int) Cell {
	return Cell{Row: index / BoardSize, Col: index % BoardSize}
}

func (that Cell) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Cell) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board - 3x3 grid stored row-major, index i is (i/3, i%3).
type Board [CellsCount]Mark

func (that Board) Get(row, col int) Mark {
	cell := Cell{Row: row, Col: col}
	if !cell.Valid() {
		return EmptyCell
	}

	return that[cell.Index()]
}

// Set - records mark in an empty cell. An occupied cell is never overwritten.
func (that *Board) Set(row, col int, mark Mark) error {
	cell := Cell{Row: row, Col: col}
	if !cell.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, cell)
	}

	if that[cell.Index()] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	that[cell.Index()] = mark

	return nil
}

// EmptyCells - returns unset cells in row-major order.
func (that Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, CellsCount)
	for i, mark := range that {
		if mark == EmptyCell {
			cells = append(cells, CellFromIndex(i))
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, mark := range that {
		if mark == EmptyCell {
			return false
		}
	}

	return true
}

// Filled - number of marked cells.
func (that Board) Filled() int {
	return CellsCount - len(that.EmptyCells())
}

// Rows - copy of the board as a grid.
func (that Board) Rows() [BoardSize][BoardSize]Mark {
	var grid [BoardSize][BoardSize]Mark
	for i, mark := range that {
		cell := CellFromIndex(i)
		grid[cell.Row][cell.Col] = mark
	}

	return grid
}

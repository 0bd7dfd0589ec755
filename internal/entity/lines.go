package entity

// WinLines - every line that wins when uniformly marked. Rows come first, then
// columns, then the main diagonal and the anti-diagonal.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

const (
	mainDiagonal = 6
	antiDiagonal = 7
)

// LinesThrough - indexes into WinLines of the lines that pass through cell.
func LinesThrough(cell Cell) []int {
	lines := []int{cell.Row, BoardSize + cell.Col}

	if cell.Row == cell.Col {
		lines = append(lines, mainDiagonal)
	}

	if cell.Row+cell.Col == BoardSize-1 {
		lines = append(lines, antiDiagonal)
	}

	return lines
}

// IsWinningMove - reports whether the lines through last are all marked with mark.
//
// Only lines through last are checked. That is correct only while a line can be
// completed by nothing but the move just played, which holds as long as moves are
// never taken back. Use DetermineWinner if that ever changes.
func IsWinningMove(board *Board, last Cell, mark Mark) bool {
	if mark == EmptyCell || !last.Valid() {
		return false
	}

	for _, line := range LinesThrough(last) {
		if lineOwner(board, WinLines[line]) == mark {
			return true
		}
	}

	return false
}

// DetermineWinner - full scan of all lines. Returns EmptyCell when nobody has a line.
func DetermineWinner(board *Board) Mark {
	for _, line := range WinLines {
		if owner := lineOwner(board, line); owner != EmptyCell {
			return owner
		}
	}

	return EmptyCell
}

func lineOwner(board *Board, line [3]int) Mark {
	a, b, c := board[line[0]], board[line[1]], board[line[2]]
	if a != EmptyCell && a == b && b == c {
		return a
	}

	return EmptyCell
}

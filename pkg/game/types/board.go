package types

import (
	"strings"

	"github.com/cbodonnell/tictactoe/pkg/game/constants"
)

// Board is the fixed 3x3 grid, indexed [row][col].
type Board [constants.BoardSize][constants.BoardSize]Cell

// InBounds reports whether row and col address a cell on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < constants.BoardSize && col >= 0 && col < constants.BoardSize
}

// Count returns the number of cells holding c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteString("\n-+-+-\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

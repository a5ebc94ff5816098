package game

import (
	"github.com/cbodonnell/tictactoe/pkg/game/constants"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
)

// winLines lists every line in scan order: rows, columns, main diagonal, anti-diagonal.
// Each line is ordered from its first to its last cell.
var winLines = buildWinLines()

func buildWinLines() [][constants.BoardSize]types.Position {
	n := constants.BoardSize
	lines := make([][constants.BoardSize]types.Position, 0, 2*n+2)

	for i := 0; i < n; i++ {
		var row [constants.BoardSize]types.Position
		for j := 0; j < n; j++ {
			row[j] = types.Position{Row: i, Col: j}
		}
		lines = append(lines, row)
	}

	for j := 0; j < n; j++ {
		var col [constants.BoardSize]types.Position
		for i := 0; i < n; i++ {
			col[i] = types.Position{Row: i, Col: j}
		}
		lines = append(lines, col)
	}

	var diag, anti [constants.BoardSize]types.Position
	for i := 0; i < n; i++ {
		diag[i] = types.Position{Row: i, Col: i}
		anti[i] = types.Position{Row: i, Col: n - 1 - i}
	}
	lines = append(lines, diag, anti)

	return lines
}

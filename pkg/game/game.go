package game

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/pkg/game/constants"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
)

// GameState owns the board, the player to move and the outcome of the current round.
// It performs no I/O and is not safe for concurrent use.
type GameState struct {
	// board is the grid of placed marks.
	board types.Board
	// currentPlayer is the mark placed by the next move.
	currentPlayer types.Cell
	// moveCount is the number of marks on the board.
	moveCount int
	// phase is cached after every placed mark.
	phase types.Phase
	// winningLine is only meaningful when phase is PhaseWon.
	winningLine types.Line
}

func NewGameState() *GameState {
	g := &GameState{}
	g.Reset()
	return g
}

// Reset reinitializes the state in place. It can be called in any phase.
func (g *GameState) Reset() {
	g.board = types.Board{}
	g.currentPlayer = types.CellX
	g.moveCount = 0
	g.phase = types.PhaseInProgress
	g.winningLine = types.Line{}
}

// PlaceMark places the current player's mark at row, col.
// Out of range coordinates, occupied cells and finished games are silent no-ops
// reported as MoveRejected.
func (g *GameState) PlaceMark(row, col int) types.MoveResult {
	if g.phase != types.PhaseInProgress {
		return types.MoveRejected
	}
	if !types.InBounds(row, col) || g.board[row][col] != types.CellEmpty {
		return types.MoveRejected
	}

	g.board[row][col] = g.currentPlayer
	g.moveCount++
	g.evaluateTerminal()

	switch g.phase {
	case types.PhaseWon:
		return types.MoveWon
	case types.PhaseDrawn:
		return types.MoveDrawn
	}

	g.currentPlayer = g.currentPlayer.Opponent()
	return types.MovePlaced
}

// evaluateTerminal checks rows, then columns, then the two diagonals.
// The first complete line wins.
func (g *GameState) evaluateTerminal() {
	for _, line := range winLines {
		if g.isComplete(line) {
			g.phase = types.PhaseWon
			g.winningLine = types.Line{Start: line[0], End: line[len(line)-1]}
			return
		}
	}

	if g.moveCount == constants.MaxMoves {
		g.phase = types.PhaseDrawn
		g.winningLine = types.Line{}
	}
}

func (g *GameState) isComplete(line [constants.BoardSize]types.Position) bool {
	first := g.board[line[0].Row][line[0].Col]
	if first == types.CellEmpty {
		return false
	}
	for _, p := range line[1:] {
		if g.board[p.Row][p.Col] != first {
			return false
		}
	}
	return true
}

// CellAt returns the content of a cell, or CellEmpty when out of range.
func (g *GameState) CellAt(row, col int) types.Cell {
	if !types.InBounds(row, col) {
		return types.CellEmpty
	}
	return g.board[row][col]
}

func (g *GameState) CurrentPlayer() types.Cell {
	return g.currentPlayer
}

func (g *GameState) Phase() types.Phase {
	return g.phase
}

func (g *GameState) MoveCount() int {
	return g.moveCount
}

// WinningLine returns the endpoints of the completed line.
// The boolean is false unless the game has been won.
func (g *GameState) WinningLine() (types.Line, bool) {
	if g.phase != types.PhaseWon {
		return types.Line{}, false
	}
	return g.winningLine, true
}

// Winner returns the mark that completed the winning line.
func (g *GameState) Winner() (types.Cell, bool) {
	if g.phase != types.PhaseWon {
		return types.CellEmpty, false
	}
	// the current player does not flip on the winning move
	return g.currentPlayer, true
}

// Board returns a copy of the board.
func (g *GameState) Board() types.Board {
	return g.board
}

// Status is the human readable description of the phase.
func (g *GameState) Status() string {
	switch g.phase {
	case types.PhaseWon:
		return fmt.Sprintf("Player %s wins, restart to play again", g.currentPlayer)
	case types.PhaseDrawn:
		return "Draw, restart to play again"
	}
	return "In progress"
}

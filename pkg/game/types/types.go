package types

// Cell is the content of a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return " "
	case CellX:
		return "X"
	case CellO:
		return "O"
	}
	return "?"
}

// Opponent returns the mark that plays after c.
// The empty cell has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case CellX:
		return CellO
	case CellO:
		return CellX
	}
	return CellEmpty
}

type Phase uint8

const (
	PhaseInProgress Phase = iota
	PhaseWon
	PhaseDrawn
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "InProgress"
	case PhaseWon:
		return "Won"
	case PhaseDrawn:
		return "Drawn"
	}
	return "Unknown"
}

// MoveResult reports the outcome of a mark placement.
type MoveResult uint8

const (
	// MoveRejected means the placement was a no-op.
	MoveRejected MoveResult = iota
	// MovePlaced means the mark was placed and the game continues.
	MovePlaced
	// MoveWon means the mark completed a line.
	MoveWon
	// MoveDrawn means the mark filled the board without completing a line.
	MoveDrawn
)

func (r MoveResult) String() string {
	switch r {
	case MoveRejected:
		return "Rejected"
	case MovePlaced:
		return "Placed"
	case MoveWon:
		return "Won"
	case MoveDrawn:
		return "Drawn"
	}
	return "Unknown"
}

// Position addresses a board cell. Row 0 is the top row and column 0 the left column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is the pair of endpoint cells of a completed three-in-a-row.
type Line struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

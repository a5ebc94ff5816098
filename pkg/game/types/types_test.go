package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellOpponent(t *testing.T) {
	assert.Equal(t, CellO, CellX.Opponent())
	assert.Equal(t, CellX, CellO.Opponent())
	assert.Equal(t, CellEmpty, CellEmpty.Opponent())
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 2, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InBounds(tt.row, tt.col), "InBounds(%d, %d)", tt.row, tt.col)
	}
}

func TestBoard(t *testing.T) {
	var b Board
	b[0][0] = CellX
	b[1][1] = CellO
	b[2][2] = CellX

	assert.Equal(t, 2, b.Count(CellX))
	assert.Equal(t, 1, b.Count(CellO))
	assert.Equal(t, 6, b.Count(CellEmpty))
	assert.Equal(t, "X| | \n-+-+-\n |O| \n-+-+-\n | |X", b.String())
}

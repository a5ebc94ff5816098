// Package render draws the board, marks, winning line and restart button through a
// backend-agnostic Renderer working in normalized device coordinates.
package render

import (
	"image/color"

	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
)

// Renderer is the drawing facade implemented by the host graphics backend.
// All coordinates are normalized device coordinates.
type Renderer interface {
	DrawLineSegment(p0, p1 geometry.Point, clr color.Color, width float32)
	DrawFilledPolygon(points []geometry.Point, clr color.Color)
	DrawPolyline(points []geometry.Point, clr color.Color, width float32)
}

// BoardView is the read-only part of the game state needed to draw a frame.
type BoardView interface {
	CellAt(row, col int) types.Cell
	WinningLine() (types.Line, bool)
}

var (
	ColorBackground   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorGrid         = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorX            = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorO            = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	ColorWinningLine  = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	ColorButton       = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	ColorButtonHover  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	ColorButtonBorder = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorButtonLabel  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

package render

import (
	"math"

	"github.com/cbodonnell/tictactoe/pkg/game/constants"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
)

func DrawGrid(r Renderer) {
	for _, line := range geometry.GridLines(constants.BoardSize) {
		r.DrawLineSegment(line[0], line[1], ColorGrid, constants.GridLineWidth)
	}
}

// DrawMarks draws an X or an O centred on every occupied cell.
func DrawMarks(r Renderer, board BoardView) {
	for row := 0; row < constants.BoardSize; row++ {
		for col := 0; col < constants.BoardSize; col++ {
			center := geometry.CellCenter(row, col, constants.BoardSize)
			switch board.CellAt(row, col) {
			case types.CellX:
				DrawX(r, center)
			case types.CellO:
				DrawO(r, center)
			}
		}
	}
}

func DrawX(r Renderer, center geometry.Point) {
	s := constants.MarkHalfSize
	r.DrawLineSegment(
		geometry.Point{X: center.X - s, Y: center.Y - s},
		geometry.Point{X: center.X + s, Y: center.Y + s},
		ColorX, constants.MarkStrokeWidth,
	)
	r.DrawLineSegment(
		geometry.Point{X: center.X - s, Y: center.Y + s},
		geometry.Point{X: center.X + s, Y: center.Y - s},
		ColorX, constants.MarkStrokeWidth,
	)
}

func DrawO(r Renderer, center geometry.Point) {
	r.DrawPolyline(Circle(center, constants.MarkHalfSize, constants.CircleSegments), ColorO, constants.MarkStrokeWidth)
}

// Circle approximates a circle with a closed polyline of the given number of segments.
// The first point is repeated at the end.
// It returns nil when segments is not positive.
func Circle(center geometry.Point, radius float64, segments int) []geometry.Point {
	if segments <= 0 {
		return nil
	}
	points := make([]geometry.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i%segments) / float64(segments)
		points = append(points, geometry.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return points
}

// DrawWinningLine joins the centres of the winning line's end cells.
// Nothing is drawn unless the game has been won.
func DrawWinningLine(r Renderer, board BoardView) {
	line, ok := board.WinningLine()
	if !ok {
		return
	}
	start := geometry.CellCenter(line.Start.Row, line.Start.Col, constants.BoardSize)
	end := geometry.CellCenter(line.End.Row, line.End.Col, constants.BoardSize)
	r.DrawLineSegment(start, end, ColorWinningLine, constants.WinningLineWidth)
}

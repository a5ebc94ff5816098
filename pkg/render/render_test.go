package render

import (
	"image/color"
	"math"
	"testing"

	mocks "github.com/cbodonnell/tictactoe/mocks/github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/game"
	"github.com/cbodonnell/tictactoe/pkg/game/constants"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var buttonBounds = geometry.Rect{
	Left:   constants.ButtonLeft,
	Right:  constants.ButtonRight,
	Bottom: constants.ButtonBottom,
	Top:    constants.ButtonTop,
}

// recorder keeps the kind and colour of every draw call in order.
type recorder struct {
	calls []recordedCall
}

type recordedCall struct {
	kind   string
	clr    color.Color
	points []geometry.Point
	width  float32
}

func (r *recorder) DrawLineSegment(p0, p1 geometry.Point, clr color.Color, width float32) {
	r.calls = append(r.calls, recordedCall{kind: "line", clr: clr, points: []geometry.Point{p0, p1}, width: width})
}

func (r *recorder) DrawFilledPolygon(points []geometry.Point, clr color.Color) {
	r.calls = append(r.calls, recordedCall{kind: "polygon", clr: clr, points: points})
}

func (r *recorder) DrawPolyline(points []geometry.Point, clr color.Color, width float32) {
	r.calls = append(r.calls, recordedCall{kind: "polyline", clr: clr, points: points, width: width})
}

func (r *recorder) count(kind string, clr color.Color) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind && c.clr == clr {
			n++
		}
	}
	return n
}

// near matches a point within floating point error of (x, y).
func near(x, y float64) interface{} {
	return mock.MatchedBy(func(p geometry.Point) bool {
		return math.Abs(p.X-x) < 1e-9 && math.Abs(p.Y-y) < 1e-9
	})
}

func TestDrawGrid(t *testing.T) {
	r := mocks.NewRenderer(t)
	r.EXPECT().DrawLineSegment(mock.Anything, mock.Anything, ColorGrid, constants.GridLineWidth).Times(4)

	DrawGrid(r)
}

func TestDrawMarks(t *testing.T) {
	state := game.NewGameState()
	state.PlaceMark(0, 0)
	state.PlaceMark(1, 1)
	state.PlaceMark(2, 2)

	r := mocks.NewRenderer(t)
	r.EXPECT().DrawLineSegment(mock.Anything, mock.Anything, ColorX, constants.MarkStrokeWidth).Times(4)
	r.EXPECT().DrawPolyline(mock.Anything, ColorO, constants.MarkStrokeWidth).
		Run(func(points []geometry.Point, clr color.Color, width float32) {
			require.Len(t, points, constants.CircleSegments+1)
			centre := geometry.CellCenter(1, 1, constants.BoardSize)
			for _, p := range points {
				assert.InDelta(t, constants.MarkHalfSize, math.Hypot(p.X-centre.X, p.Y-centre.Y), 1e-9)
			}
		}).
		Once()

	DrawMarks(r, state)
}

func TestDrawX(t *testing.T) {
	centre := geometry.Point{X: 0.5, Y: -0.5}
	r := mocks.NewRenderer(t)
	r.EXPECT().DrawLineSegment(near(0.3, -0.7), near(0.7, -0.3), ColorX, constants.MarkStrokeWidth).Once()
	r.EXPECT().DrawLineSegment(near(0.3, -0.3), near(0.7, -0.7), ColorX, constants.MarkStrokeWidth).Once()

	DrawX(r, centre)
}

func TestDrawWinningLine(t *testing.T) {
	t.Run("nothing is drawn while in progress", func(t *testing.T) {
		state := game.NewGameState()
		state.PlaceMark(0, 0)

		// any call on a mock without expectations fails the test
		DrawWinningLine(mocks.NewRenderer(t), state)
	})

	t.Run("diagonal win joins the corner centres", func(t *testing.T) {
		state := game.NewGameState()
		for _, m := range [][2]int{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {2, 2}} {
			state.PlaceMark(m[0], m[1])
		}

		r := mocks.NewRenderer(t)
		r.EXPECT().DrawLineSegment(
			geometry.CellCenter(0, 0, constants.BoardSize),
			geometry.CellCenter(2, 2, constants.BoardSize),
			ColorWinningLine,
			constants.WinningLineWidth,
		).Once()

		DrawWinningLine(r, state)
	})
}

func TestDrawRestartButton(t *testing.T) {
	tests := []struct {
		name       string
		hovered    bool
		background color.Color
	}{
		{name: "idle", hovered: false, background: ColorButton},
		{name: "hovered", hovered: true, background: ColorButtonHover},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}

			DrawRestartButton(r, buttonBounds, tt.hovered)

			require.NotEmpty(t, r.calls)
			assert.Equal(t, "polygon", r.calls[0].kind)
			assert.Equal(t, tt.background, r.calls[0].clr)
			assert.Equal(t, buttonBounds.Corners(), r.calls[0].points)

			assert.Equal(t, "polyline", r.calls[1].kind)
			assert.Equal(t, ColorButtonBorder, r.calls[1].clr)
			assert.Len(t, r.calls[1].points, 5)
			assert.Equal(t, r.calls[1].points[0], r.calls[1].points[4])

			assert.Equal(t, len(LabelStrokes(RestartLabel, buttonBounds)), r.count("line", ColorButtonLabel))
		})
	}
}

func TestLabelStrokes(t *testing.T) {
	strokes := LabelStrokes(RestartLabel, buttonBounds)

	// R E S T A R T
	assert.Len(t, strokes, 5+4+5+2+4+5+2)

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, s := range strokes {
		for _, p := range s {
			assert.True(t, buttonBounds.Contains(p), "stroke point %v outside the button", p)
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
	}
	// centred horizontally
	assert.InDelta(t, buttonBounds.Left-minX, maxX-buttonBounds.Right, 1e-9)
}

func TestLabelStrokes_Empty(t *testing.T) {
	assert.Nil(t, LabelStrokes("", buttonBounds))
	assert.Empty(t, LabelStrokes("??", buttonBounds))
}

func TestCircle(t *testing.T) {
	points := Circle(geometry.Point{X: 0.1, Y: 0.2}, 0.5, 8)

	require.Len(t, points, 9)
	assert.Equal(t, points[0], points[8])
	assert.InDelta(t, 0.6, points[0].X, 1e-9)
	assert.InDelta(t, 0.2, points[0].Y, 1e-9)
	assert.InDelta(t, 0.1, points[2].X, 1e-9)
	assert.InDelta(t, 0.7, points[2].Y, 1e-9)

	t.Run("no segments", func(t *testing.T) {
		assert.Nil(t, Circle(geometry.Point{}, 0.5, 0))
		assert.Nil(t, Circle(geometry.Point{}, 0.5, -3))
	})
}

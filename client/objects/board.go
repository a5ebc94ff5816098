package objects

import (
	"github.com/cbodonnell/tictactoe/client/renderer"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// GridObject draws the board grid.
type GridObject struct {
	*BaseObject
}

func NewGridObject(id string, zIndex int) *GridObject {
	return &GridObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
	}
}

func (o *GridObject) Draw(screen *ebiten.Image) {
	render.DrawGrid(renderer.New(screen))
}

// MarksObject draws the X and O marks placed on the board.
type MarksObject struct {
	*BaseObject

	board render.BoardView
}

func NewMarksObject(id string, board render.BoardView, zIndex int) *MarksObject {
	return &MarksObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		board:      board,
	}
}

func (o *MarksObject) Draw(screen *ebiten.Image) {
	render.DrawMarks(renderer.New(screen), o.board)
}

// WinningLineObject draws the winning line once the game has been won.
type WinningLineObject struct {
	*BaseObject

	board render.BoardView
}

func NewWinningLineObject(id string, board render.BoardView, zIndex int) *WinningLineObject {
	return &WinningLineObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		board:      board,
	}
}

func (o *WinningLineObject) Draw(screen *ebiten.Image) {
	render.DrawWinningLine(renderer.New(screen), o.board)
}

// RestartButtonObject draws the restart button.
type RestartButtonObject struct {
	*BaseObject

	bounds  geometry.Rect
	hovered func() bool
}

type NewRestartButtonObjectOptions struct {
	// Bounds is the button rectangle in normalized device coordinates.
	Bounds geometry.Rect
	// Hovered reports whether the pointer is over the button.
	Hovered func() bool
	// ZIndex is the z-index of the button.
	ZIndex int
}

func NewRestartButtonObject(id string, opts NewRestartButtonObjectOptions) *RestartButtonObject {
	hovered := opts.Hovered
	if hovered == nil {
		hovered = func() bool { return false }
	}
	return &RestartButtonObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		bounds:     opts.Bounds,
		hovered:    hovered,
	}
}

func (o *RestartButtonObject) Draw(screen *ebiten.Image) {
	render.DrawRestartButton(renderer.New(screen), o.bounds, o.hovered())
}

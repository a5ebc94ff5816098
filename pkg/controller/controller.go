package controller

import (
	"github.com/cbodonnell/tictactoe/pkg/game"
	"github.com/cbodonnell/tictactoe/pkg/game/constants"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/queue"
)

// InputController translates pointer and key events into GameState operations and
// owns the hover state of the restart button.
type InputController struct {
	// state is the game driven by this controller.
	state *game.GameState
	// button is the restart button rectangle in normalized device coordinates.
	button geometry.Rect
	// hovered is true while the pointer rests over the restart button.
	hovered bool
	// exitRequested is set once the host has been asked to close.
	exitRequested bool

	onRestart func()
	onMove    func(row, col int, result types.MoveResult)
	onExit    func()
}

type Options struct {
	// OnRestart is called after the game has been reset.
	OnRestart func()
	// OnMove is called after every placement attempt, including rejected ones.
	OnMove func(row, col int, result types.MoveResult)
	// OnExit is called when the exit key is pressed.
	OnExit func()
}

func NewInputController(state *game.GameState, opts Options) *InputController {
	return &InputController{
		state: state,
		button: geometry.Rect{
			Left:   constants.ButtonLeft,
			Right:  constants.ButtonRight,
			Bottom: constants.ButtonBottom,
			Top:    constants.ButtonTop,
		},
		onRestart: opts.OnRestart,
		onMove:    opts.OnMove,
		onExit:    opts.OnExit,
	}
}

// OnPointerMove recomputes the hover flag. It never touches the game state.
func (c *InputController) OnPointerMove(x, y, viewportWidth, viewportHeight float64) {
	c.hovered = c.hitsButton(x, y, viewportWidth, viewportHeight)
}

// OnPointerClick resets the game when the click lands on the restart button.
// Otherwise it places a mark in the cell under the pointer while the game is in progress.
func (c *InputController) OnPointerClick(x, y, viewportWidth, viewportHeight float64) {
	c.hovered = c.hitsButton(x, y, viewportWidth, viewportHeight)
	if c.hovered {
		c.restart()
		return
	}

	if c.state.Phase() != types.PhaseInProgress {
		return
	}

	row, col, ok := geometry.CellAt(x, y, viewportWidth, viewportHeight, constants.BoardSize)
	if !ok {
		return
	}

	result := c.state.PlaceMark(row, col)
	if c.onMove != nil {
		c.onMove(row, col, result)
	}
}

func (c *InputController) OnKeyPress(key Key) {
	switch key {
	case KeyEscape:
		c.exitRequested = true
		if c.onExit != nil {
			c.onExit()
		}
	case KeyRestart:
		c.restart()
	}
}

// HandleEvent dispatches a single event to the matching operation.
// Unknown event types are ignored.
func (c *InputController) HandleEvent(e Event) {
	switch e := e.(type) {
	case PointerMoveEvent:
		c.OnPointerMove(e.X, e.Y, e.ViewportWidth, e.ViewportHeight)
	case PointerClickEvent:
		c.OnPointerClick(e.X, e.Y, e.ViewportWidth, e.ViewportHeight)
	case KeyPressEvent:
		c.OnKeyPress(e.Key)
	}
}

// ProcessEvents drains q in delivery order and returns the number of events handled.
func (c *InputController) ProcessEvents(q queue.Queue[Event]) int {
	events := q.ReadAll()
	for _, e := range events {
		c.HandleEvent(e)
	}
	return len(events)
}

func (c *InputController) Hovered() bool {
	return c.hovered
}

func (c *InputController) ExitRequested() bool {
	return c.exitRequested
}

func (c *InputController) ButtonBounds() geometry.Rect {
	return c.button
}

func (c *InputController) hitsButton(x, y, viewportWidth, viewportHeight float64) bool {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return false
	}
	return c.button.Contains(geometry.ScreenToNDC(x, y, viewportWidth, viewportHeight))
}

func (c *InputController) restart() {
	c.state.Reset()
	if c.onRestart != nil {
		c.onRestart()
	}
}

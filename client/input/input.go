package input

import (
	"github.com/cbodonnell/tictactoe/pkg/controller"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventSource produces the input events of the current tick.
type EventSource interface {
	Poll(q queue.Queue[controller.Event], width, height int)
}

type keyBinding struct {
	key  ebiten.Key
	bind controller.Key
}

// keyBindings are checked in order so that simultaneous presses are delivered deterministically.
var keyBindings = []keyBinding{
	{key: ebiten.KeyEscape, bind: controller.KeyEscape},
	{key: ebiten.KeyR, bind: controller.KeyRestart},
}

// Poller translates ebiten's polled input state into controller events.
// Only press edges are reported for buttons, keys and touches.
type Poller struct {
	// cursorX and cursorY are the last reported cursor position.
	cursorX, cursorY int
	// hasCursor is false until the first pointer move has been reported.
	hasCursor bool
	// touchIDs is the last touch identifiers.
	touchIDs []ebiten.TouchID
	// gamepadIDs is the last gamepad identifiers.
	gamepadIDs []ebiten.GamepadID
}

var _ EventSource = &Poller{}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll enqueues the events of the current tick. Events that do not fit in the
// queue are logged and dropped.
func (p *Poller) Poll(q queue.Queue[controller.Event], width, height int) {
	w, h := float64(width), float64(height)

	x, y := ebiten.CursorPosition()
	if !p.hasCursor || x != p.cursorX || y != p.cursorY {
		p.cursorX, p.cursorY, p.hasCursor = x, y, true
		enqueue(q, controller.PointerMoveEvent{X: float64(x), Y: float64(y), ViewportWidth: w, ViewportHeight: h})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		enqueue(q, controller.PointerClickEvent{X: float64(x), Y: float64(y), ViewportWidth: w, ViewportHeight: h})
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		enqueue(q, controller.PointerMoveEvent{X: float64(tx), Y: float64(ty), ViewportWidth: w, ViewportHeight: h})
		enqueue(q, controller.PointerClickEvent{X: float64(tx), Y: float64(ty), ViewportWidth: w, ViewportHeight: h})
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			enqueue(q, controller.KeyPressEvent{Key: b.bind})
		}
	}

	if p.isGamepadRestartJustPressed() {
		enqueue(q, controller.KeyPressEvent{Key: controller.KeyRestart})
	}
}

// isGamepadRestartJustPressed returns a boolean value indicating whether the start
// button of any connected gamepad is just pressed.
func (p *Poller) isGamepadRestartJustPressed() bool {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, g := range p.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonCenterRight) {
				return true
			}
		} else {
			// The button 9 is commonly the start button on non-standard layouts.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton9) {
				return true
			}
		}
	}
	return false
}

func enqueue(q queue.Queue[controller.Event], e controller.Event) {
	if err := q.Enqueue(e); err != nil {
		log.Warn("Dropping input event %T: %v", e, err)
	}
}

package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tictactoe/client/input"
	"github.com/cbodonnell/tictactoe/client/objects"
	"github.com/cbodonnell/tictactoe/pkg/controller"
	"github.com/cbodonnell/tictactoe/pkg/game"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/queue"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/google/uuid"
)

const (
	ZIndexGrid = iota
	ZIndexMarks
	ZIndexWinningLine
	ZIndexButton
	ZIndexEffect
	ZIndexOverlay
)

// ResultEffectTTL is how long the end-of-round text stays on screen, in milliseconds.
const ResultEffectTTL = 1500

// BoardScene is the playing surface: it owns the game state, the input controller
// and the queue of pending input events.
type BoardScene struct {
	*BaseScene

	// state is the game being played.
	state *game.GameState
	// controller applies input events to the state.
	controller *controller.InputController
	// events holds the input events of the current tick.
	events queue.Queue[controller.Event]
	// source polls the host for input events.
	source input.EventSource
	// roundID identifies the current round in logs.
	roundID uuid.UUID
	// resultEffect announces the outcome of the current round, if it has finished.
	resultEffect *objects.TextEffect
	// width and height are the current viewport size in pixels.
	width, height int
}

type BoardSceneOptions struct {
	// Debug shows the status overlay.
	Debug bool
	// Source overrides the input source. Defaults to polling ebiten.
	Source input.EventSource
}

var _ Scene = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (*BoardScene, error) {
	s := &BoardScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("board-root")),
		state:     game.NewGameState(),
		events:    queue.NewInMemoryQueue[controller.Event](queue.QueueBufferSize),
		source:    opts.Source,
	}
	if s.source == nil {
		s.source = input.NewPoller()
	}
	s.controller = controller.NewInputController(s.state, controller.Options{
		OnRestart: s.startRound,
		OnMove:    s.logMove,
		OnExit: func() {
			log.Info("Exit requested in round %s", s.roundID)
		},
	})

	children := []objects.GameObject{
		objects.NewGridObject("grid", ZIndexGrid),
		objects.NewMarksObject("marks", s.state, ZIndexMarks),
		objects.NewWinningLineObject("winning-line", s.state, ZIndexWinningLine),
		objects.NewRestartButtonObject("restart-button", objects.NewRestartButtonObjectOptions{
			Bounds:  s.controller.ButtonBounds(),
			Hovered: s.controller.Hovered,
			ZIndex:  ZIndexButton,
		}),
	}
	if opts.Debug {
		children = append(children, objects.NewTextOverlayObject("status-overlay", objects.NewTextOverlayObjectOptions{
			Text:   s.state.Status,
			Color:  color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
			ZIndex: ZIndexOverlay,
		}))
	}
	for _, child := range children {
		if err := s.Root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s to board scene: %v", child.GetID(), err)
		}
	}

	return s, nil
}

func (s *BoardScene) Init() error {
	s.startRound()
	return s.BaseScene.Init()
}

// SetViewport records the size of the screen the scene is drawn on.
func (s *BoardScene) SetViewport(width, height int) {
	s.width, s.height = width, height
}

// Update handles the pending input before any object observes the state.
func (s *BoardScene) Update() error {
	s.source.Poll(s.events, s.width, s.height)
	if n := s.controller.ProcessEvents(s.events); n > 0 {
		log.Trace("Processed %d input events", n)
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

func (s *BoardScene) ExitRequested() bool {
	return s.controller.ExitRequested()
}

func (s *BoardScene) Status() string {
	return s.state.Status()
}

func (s *BoardScene) State() *game.GameState {
	return s.state
}

func (s *BoardScene) startRound() {
	s.clearResultEffect()
	s.roundID = uuid.New()
	log.Info("Starting round %s", s.roundID)
}

func (s *BoardScene) showResultEffect() {
	s.clearResultEffect()

	msg := "Draw"
	if winner, ok := s.state.Winner(); ok {
		msg = fmt.Sprintf("%s wins", winner)
	}
	effect := objects.NewTextEffect(fmt.Sprintf("result-%s", s.roundID), objects.NewTextEffectOptions{
		Text:   msg,
		Y:      float64(s.height) * 0.1,
		Color:  render.ColorWinningLine,
		TTL:    ResultEffectTTL,
		ZIndex: ZIndexEffect,
	})
	if err := s.Root.AddChild(effect.GetID(), effect); err != nil {
		log.Warn("Failed to add result effect: %v", err)
		return
	}
	s.resultEffect = effect
}

func (s *BoardScene) clearResultEffect() {
	if s.resultEffect == nil {
		return
	}
	if !s.resultEffect.Expired() && s.resultEffect.GetParent() != nil {
		if err := s.resultEffect.RemoveFromParent(); err != nil {
			log.Warn("Failed to remove result effect: %v", err)
		}
	}
	s.resultEffect = nil
}

func (s *BoardScene) logMove(row, col int, result types.MoveResult) {
	switch result {
	case types.MoveRejected:
		log.Debug("Round %s: rejected move at %d,%d", s.roundID, row, col)
	case types.MovePlaced:
		log.Debug("Round %s: %s placed at %d,%d", s.roundID, s.state.CellAt(row, col), row, col)
	case types.MoveWon, types.MoveDrawn:
		log.Info("Round %s finished after %d moves: %s", s.roundID, s.state.MoveCount(), s.state.Status())
		s.showResultEffect()
	}
}

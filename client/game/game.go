package game

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/client/scenes"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 800
	DefaultTitle        = "Tic-Tac-Toe"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// title is the window title prefix.
	title string
	// scene is the current scene.
	scene scenes.Scene
	// board is the board scene, the only scene that handles input.
	board *scenes.BoardScene
	// status is the last status written to the window title.
	status string
	// screenWidth and screenHeight are the last layout size.
	screenWidth, screenHeight int
}

type NewGameOptions struct {
	Debug bool
	Title string
}

func NewGame(opts NewGameOptions) (*Game, error) {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	g := &Game{
		debug:        opts.Debug,
		title:        title,
		screenWidth:  DefaultScreenWidth,
		screenHeight: DefaultScreenHeight,
	}

	if err := g.loadBoard(); err != nil {
		return nil, fmt.Errorf("failed to load board scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadBoard() error {
	board, err := scenes.NewBoardScene(scenes.BoardSceneOptions{
		Debug: g.debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(board); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.board = board
	return nil
}

func (g *Game) Update() error {
	g.board.SetViewport(g.screenWidth, g.screenHeight)

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.board.ExitRequested() {
		log.Info("Closing window")
		return ebiten.Termination
	}

	g.updateTitle()

	return nil
}

// updateTitle mirrors the game status in the window title whenever it changes.
func (g *Game) updateTitle() {
	status := g.board.Status()
	if status == g.status {
		return
	}
	g.status = status
	ebiten.SetWindowTitle(WindowTitle(g.title, status))
}

// WindowTitle formats the window title for a game status.
func WindowTitle(title, status string) string {
	return fmt.Sprintf("%s - %s", title, status)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	state := g.board.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Phase: %s", state.Phase()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Moves: %d", state.MoveCount()))
}

// Layout follows the window size so that the board and the hit testing scale with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.screenWidth, g.screenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

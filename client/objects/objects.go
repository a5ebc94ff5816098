package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is implemented by anything driven by the game loop.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
// Objects form a tree which is initialized, updated, drawn and destroyed from the root down.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

package controller

// Key identifies the keys the controller reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyRestart
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyRestart:
		return "Restart"
	}
	return "Unknown"
}

// Event is a raw input event delivered by the host.
type Event interface {
	isEvent()
}

// PointerMoveEvent reports the pointer position in screen pixels.
type PointerMoveEvent struct {
	X              float64
	Y              float64
	ViewportWidth  float64
	ViewportHeight float64
}

// PointerClickEvent reports a primary button press edge in screen pixels.
type PointerClickEvent struct {
	X              float64
	Y              float64
	ViewportWidth  float64
	ViewportHeight float64
}

// KeyPressEvent reports a key press edge.
type KeyPressEvent struct {
	Key Key
}

func (PointerMoveEvent) isEvent()  {}
func (PointerClickEvent) isEvent() {}
func (KeyPressEvent) isEvent()     {}

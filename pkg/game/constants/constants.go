package constants

const (
	// BoardSize is the number of rows and columns on the board
	BoardSize int = 3
	// MaxMoves is the number of marks that fill the board
	MaxMoves int = BoardSize * BoardSize

	// Restart button bounds in normalized device coordinates

	// ButtonLeft is the left edge of the restart button
	ButtonLeft float64 = -0.2
	// ButtonRight is the right edge of the restart button
	ButtonRight float64 = 0.2
	// ButtonBottom is the bottom edge of the restart button
	ButtonBottom float64 = -0.95
	// ButtonTop is the top edge of the restart button
	ButtonTop float64 = -0.85

	// MarkHalfSize is half the width of an X mark and the radius of an O mark
	MarkHalfSize float64 = 0.2
	// CircleSegments is the number of segments used to draw an O mark
	CircleSegments int = 32

	// MarkStrokeWidth is the stroke width of X and O marks
	MarkStrokeWidth float32 = 4
	// WinningLineWidth is the stroke width of the winning line
	WinningLineWidth float32 = 5
	// GridLineWidth is the stroke width of the grid lines
	GridLineWidth float32 = 1
	// LabelStrokeWidth is the stroke width of the restart button label
	LabelStrokeWidth float32 = 2
)

// Package geometry maps between screen pixels and normalized device coordinates.
//
// Normalized device coordinates (NDC) span [-1, 1] on both axes with the origin at
// the centre of the viewport and the y-axis increasing upward. Screen coordinates
// are pixels with the origin at the top-left corner and the y-axis increasing
// downward.
package geometry

import "math"

// Point is a position in normalized device coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in normalized device coordinates.
type Rect struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// Contains reports whether p lies inside r. Every edge is inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Corners returns the corners of r counter-clockwise from the bottom-left.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.Left, Y: r.Bottom},
		{X: r.Right, Y: r.Bottom},
		{X: r.Right, Y: r.Top},
		{X: r.Left, Y: r.Top},
	}
}

// ScreenToNDC converts a pixel position within a width x height viewport to NDC.
func ScreenToNDC(x, y, width, height float64) Point {
	return Point{
		X: 2*x/width - 1,
		Y: 1 - 2*y/height,
	}
}

// NDCToScreen converts a point in NDC to a pixel position within a width x height viewport.
func NDCToScreen(p Point, width, height float64) (x, y float64) {
	return (p.X + 1) / 2 * width, (1 - p.Y) / 2 * height
}

// CellAt maps a pixel position to the board cell under it by dividing the viewport
// into size x size equal cells. ok is false when the position falls outside the
// board or the viewport is empty.
func CellAt(x, y, width, height float64, size int) (row, col int, ok bool) {
	if width <= 0 || height <= 0 || size <= 0 {
		return 0, 0, false
	}
	cellWidth := width / float64(size)
	cellHeight := height / float64(size)
	col = int(math.Floor(x / cellWidth))
	row = int(math.Floor(y / cellHeight))
	if row < 0 || row >= size || col < 0 || col >= size {
		return 0, 0, false
	}
	return row, col, true
}

// CellCenter returns the centre of a board cell in NDC. Row 0 is at the top.
func CellCenter(row, col, size int) Point {
	cellSize := 2.0 / float64(size)
	return Point{
		X: -1 + cellSize/2 + float64(col)*cellSize,
		Y: 1 - cellSize/2 - float64(row)*cellSize,
	}
}

// GridLines returns the inner grid lines of a size x size board as pairs of endpoints,
// vertical lines first.
func GridLines(size int) [][2]Point {
	cellSize := 2.0 / float64(size)
	lines := make([][2]Point, 0, 2*(size-1))
	for i := 1; i < size; i++ {
		x := -1 + float64(i)*cellSize
		lines = append(lines, [2]Point{{X: x, Y: -1}, {X: x, Y: 1}})
	}
	for i := 1; i < size; i++ {
		y := 1 - float64(i)*cellSize
		lines = append(lines, [2]Point{{X: -1, Y: y}, {X: 1, Y: y}})
	}
	return lines
}

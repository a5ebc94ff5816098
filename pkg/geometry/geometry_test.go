package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Point
	}{
		{name: "top left", x: 0, y: 0, want: Point{X: -1, Y: 1}},
		{name: "centre", x: 400, y: 300, want: Point{X: 0, Y: 0}},
		{name: "bottom right", x: 800, y: 600, want: Point{X: 1, Y: -1}},
		{name: "quarter", x: 200, y: 450, want: Point{X: -0.5, Y: -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToNDC(tt.x, tt.y, 800, 600)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestNDCToScreenRoundTrip(t *testing.T) {
	for _, p := range []Point{{X: -1, Y: 1}, {X: 0.25, Y: -0.75}, {X: 0.9, Y: 0.1}} {
		x, y := NDCToScreen(p, 640, 480)
		got := ScreenToNDC(x, y, 640, 480)
		assert.InDelta(t, p.X, got.X, 1e-9)
		assert.InDelta(t, p.Y, got.Y, 1e-9)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: -0.2, Right: 0.2, Bottom: -0.95, Top: -0.85}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "centre", p: Point{X: 0, Y: -0.9}, want: true},
		{name: "left edge", p: Point{X: -0.2, Y: -0.9}, want: true},
		{name: "top right corner", p: Point{X: 0.2, Y: -0.85}, want: true},
		{name: "bottom edge", p: Point{X: 0.1, Y: -0.95}, want: true},
		{name: "just left", p: Point{X: -0.2001, Y: -0.9}, want: false},
		{name: "just above", p: Point{X: 0, Y: -0.8499}, want: false},
		{name: "origin", p: Point{X: 0, Y: 0}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name          string
		x, y          float64
		width, height float64
		wantRow       int
		wantCol       int
		wantOK        bool
	}{
		{name: "top left", x: 0, y: 0, width: 900, height: 900, wantRow: 0, wantCol: 0, wantOK: true},
		{name: "centre", x: 450, y: 450, width: 900, height: 900, wantRow: 1, wantCol: 1, wantOK: true},
		{name: "cell boundary belongs to next cell", x: 300, y: 600, width: 900, height: 900, wantRow: 2, wantCol: 1, wantOK: true},
		{name: "just before boundary", x: 299.9, y: 599.9, width: 900, height: 900, wantRow: 1, wantCol: 0, wantOK: true},
		{name: "non square viewport", x: 799, y: 10, width: 800, height: 600, wantRow: 0, wantCol: 2, wantOK: true},
		{name: "right edge is outside", x: 900, y: 10, width: 900, height: 900, wantOK: false},
		{name: "negative", x: -1, y: 10, width: 900, height: 900, wantOK: false},
		{name: "empty viewport", x: 0, y: 0, width: 0, height: 900, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := CellAt(tt.x, tt.y, tt.width, tt.height, 3)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRow, row)
				assert.Equal(t, tt.wantCol, col)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	c := CellCenter(0, 0, 3)
	assert.InDelta(t, -2.0/3, c.X, 1e-9)
	assert.InDelta(t, 2.0/3, c.Y, 1e-9)

	c = CellCenter(1, 1, 3)
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)

	c = CellCenter(2, 0, 3)
	assert.InDelta(t, -2.0/3, c.X, 1e-9)
	assert.InDelta(t, -2.0/3, c.Y, 1e-9)
}

func TestGridLines(t *testing.T) {
	lines := GridLines(3)
	if assert.Len(t, lines, 4) {
		assert.InDelta(t, -1.0/3, lines[0][0].X, 1e-9)
		assert.InDelta(t, 1.0/3, lines[1][0].X, 1e-9)
		assert.InDelta(t, 1.0/3, lines[2][0].Y, 1e-9)
		assert.InDelta(t, -1.0/3, lines[3][0].Y, 1e-9)
	}
}

package render

import (
	"github.com/cbodonnell/tictactoe/pkg/game/constants"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
)

const (
	// RestartLabel is the text drawn on the restart button.
	RestartLabel = "RESTART"

	// glyphUnit is the size of one glyph grid unit in normalized device coordinates.
	glyphUnit = 0.01
	// glyphWidth and glyphHeight are measured in glyph units.
	glyphWidth  = 3
	glyphHeight = 2
	// glyphAdvance is the horizontal distance between glyph origins in glyph units.
	glyphAdvance = 4
)

type stroke [2]geometry.Point

// glyphs are drawn on a 3x2 unit grid with the origin at the bottom-left.
var glyphs = map[rune][]stroke{
	'R': {
		{{X: 0, Y: 0}, {X: 0, Y: 2}},
		{{X: 0, Y: 2}, {X: 3, Y: 2}},
		{{X: 3, Y: 2}, {X: 3, Y: 1}},
		{{X: 3, Y: 1}, {X: 0, Y: 1}},
		{{X: 1, Y: 1}, {X: 3, Y: 0}},
	},
	'E': {
		{{X: 0, Y: 0}, {X: 0, Y: 2}},
		{{X: 0, Y: 2}, {X: 3, Y: 2}},
		{{X: 0, Y: 1}, {X: 2, Y: 1}},
		{{X: 0, Y: 0}, {X: 3, Y: 0}},
	},
	'S': {
		{{X: 3, Y: 2}, {X: 0, Y: 2}},
		{{X: 0, Y: 2}, {X: 0, Y: 1}},
		{{X: 0, Y: 1}, {X: 3, Y: 1}},
		{{X: 3, Y: 1}, {X: 3, Y: 0}},
		{{X: 3, Y: 0}, {X: 0, Y: 0}},
	},
	'T': {
		{{X: 0, Y: 2}, {X: 3, Y: 2}},
		{{X: 1.5, Y: 2}, {X: 1.5, Y: 0}},
	},
	'A': {
		{{X: 0, Y: 0}, {X: 0, Y: 2}},
		{{X: 0, Y: 2}, {X: 3, Y: 2}},
		{{X: 3, Y: 2}, {X: 3, Y: 0}},
		{{X: 0, Y: 1}, {X: 3, Y: 1}},
	},
}

// DrawRestartButton draws the button background, its border and its label.
// The background is darker while hovered.
func DrawRestartButton(r Renderer, bounds geometry.Rect, hovered bool) {
	background := ColorButton
	if hovered {
		background = ColorButtonHover
	}
	corners := bounds.Corners()
	r.DrawFilledPolygon(corners, background)
	r.DrawPolyline(append(corners, corners[0]), ColorButtonBorder, constants.GridLineWidth)

	for _, s := range LabelStrokes(RestartLabel, bounds) {
		r.DrawLineSegment(s[0], s[1], ColorButtonLabel, constants.LabelStrokeWidth)
	}
}

// LabelStrokes lays out text centred in bounds and returns its strokes in NDC.
// Characters without a glyph leave a blank space.
func LabelStrokes(text string, bounds geometry.Rect) [][2]geometry.Point {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	width := float64(glyphAdvance*(len(runes)-1)+glyphWidth) * glyphUnit
	height := float64(glyphHeight) * glyphUnit
	originX := bounds.Left + (bounds.Right-bounds.Left-width)/2
	originY := bounds.Bottom + (bounds.Top-bounds.Bottom-height)/2

	var strokes [][2]geometry.Point
	for i, ch := range runes {
		x := originX + float64(i*glyphAdvance)*glyphUnit
		for _, s := range glyphs[ch] {
			strokes = append(strokes, [2]geometry.Point{
				{X: x + s[0].X*glyphUnit, Y: originY + s[0].Y*glyphUnit},
				{X: x + s[1].X*glyphUnit, Y: originY + s[1].Y*glyphUnit},
			})
		}
	}
	return strokes
}

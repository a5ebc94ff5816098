package renderer

import (
	"image"
	"image/color"

	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenRenderer draws on an ebiten image, mapping normalized device coordinates
// onto the image bounds.
type EbitenRenderer struct {
	dst *ebiten.Image
}

var _ render.Renderer = &EbitenRenderer{}

func New(dst *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{
		dst: dst,
	}
}

func (r *EbitenRenderer) DrawLineSegment(p0, p1 geometry.Point, clr color.Color, width float32) {
	x0, y0 := screenPoint(p0, r.dst.Bounds())
	x1, y1 := screenPoint(p1, r.dst.Bounds())
	vector.StrokeLine(r.dst, x0, y0, x1, y1, width, clr, true)
}

func (r *EbitenRenderer) DrawFilledPolygon(points []geometry.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	path := r.path(points)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r.drawTriangles(vs, is, clr, ebiten.EvenOdd)
}

func (r *EbitenRenderer) DrawPolyline(points []geometry.Point, clr color.Color, width float32) {
	if len(points) < 2 {
		return
	}
	path := r.path(points)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	r.drawTriangles(vs, is, clr, ebiten.FillAll)
}

func (r *EbitenRenderer) path(points []geometry.Point) *vector.Path {
	bounds := r.dst.Bounds()
	path := &vector.Path{}
	for i, p := range points {
		x, y := screenPoint(p, bounds)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	return path
}

func (r *EbitenRenderer) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color, fillRule ebiten.FillRule) {
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  fillRule,
	}
	r.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// screenPoint converts p to pixel coordinates inside bounds.
func screenPoint(p geometry.Point, bounds image.Rectangle) (float32, float32) {
	x, y := geometry.NDCToScreen(p, float64(bounds.Dx()), float64(bounds.Dy()))
	return float32(x) + float32(bounds.Min.X), float32(y) + float32(bounds.Min.Y)
}

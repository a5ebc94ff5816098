package objects

import (
	"image/color"

	"github.com/cbodonnell/tictactoe/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a line of text centred at the top of the screen.
// The text is read every frame.
type TextOverlayObject struct {
	*BaseObject

	text func() string
	clr  color.Color
}

type NewTextOverlayObjectOptions struct {
	// Text returns the text to draw.
	Text func() string
	// Color is the color of the text.
	Color color.Color
	// ZIndex is the z-index of the overlay.
	ZIndex int
}

func NewTextOverlayObject(id string, opts NewTextOverlayObjectOptions) *TextOverlayObject {
	clr := opts.Color
	if clr == nil {
		clr = color.Black
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		clr:        clr,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.text == nil {
		return
	}
	t := o.text()
	if t == "" {
		return
	}
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64((bounds.Max.X-bounds.Min.X)>>6)/2, float64(f.Metrics().Ascent>>6)+8)
	op.ColorScale.ScaleWithColor(o.clr)
	text.DrawWithOptions(screen, t, f, op)
}

package objects

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/tictactoe/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is a short-lived line of text centred horizontally on the screen.
// It removes itself from its parent once its TTL runs out.
type TextEffect struct {
	*BaseObject

	text  string
	y     float64
	color color.Color
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// Y is the distance of the text from the bottom of the screen, in pixels.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// TTL is the time to live in milliseconds. Zero keeps the effect until it is removed.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.Black
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		y:          opts.Y,
		color:      clr,
		ttl:        opts.TTL,
	}
}

// Expired reports whether the effect has run out of time.
func (o *TextEffect) Expired() bool {
	return o.ttl < 0
}

func (o *TextEffect) Update() error {
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			o.ttl = -1
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64((bounds.Max.X-bounds.Min.X)>>6)/2, float64(screen.Bounds().Dy())-o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, t, f, op)
}

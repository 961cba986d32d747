package system

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flappyshooter/ecs"
)

// DigitPlacement is one glyph of the score readout.
type DigitPlacement struct {
	Digit int
	X     int
}

// DigitLayout lays out the decimal digits of score left to right so the
// whole readout is centred on centreX. width reports a glyph's width.
func DigitLayout(score int, width func(digit int) int, centreX int) []DigitPlacement {
	if score < 0 {
		score = 0
	}
	str := strconv.Itoa(score)
	out := make([]DigitPlacement, 0, len(str))

	total := 0
	for i := 0; i < len(str); i++ {
		total += width(int(str[i] - '0'))
	}

	x := centreX - total/2
	for i := 0; i < len(str); i++ {
		d := int(str[i] - '0')
		out = append(out, DigitPlacement{Digit: d, X: x})
		x += width(d)
	}
	return out
}

// HUDSystem draws the score with digit glyph images.
type HUDSystem struct {
	digits  [10]*ebiten.Image
	centreX int
	y       float64
}

func NewHUDSystem(digits [10]*ebiten.Image, screenW int, y float64) *HUDSystem {
	return &HUDSystem{digits: digits, centreX: screenW / 2, y: y}
}

func (h *HUDSystem) glyphWidth(d int) int {
	if img := h.digits[d]; img != nil {
		return img.Bounds().Dx()
	}
	return 0
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	s := sessionState(w)
	if s == nil {
		return
	}
	for _, p := range DigitLayout(s.Score, h.glyphWidth, h.centreX) {
		img := h.digits[p.Digit]
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X), h.y)
		screen.DrawImage(img, op)
	}
}

package component

import "github.com/jakecoffman/cp"

// Collider is an axis-aligned box centred on the entity transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()

// Bounds returns the screen-space box of a collider. Screen y grows
// downwards, so B holds the top edge and T the bottom edge; cp's
// comparisons only need B <= T.
func Bounds(t *Transform, c *Collider) cp.BB {
	if t == nil || c == nil {
		return cp.BB{}
	}
	hw, hh := c.Width/2, c.Height/2
	return cp.BB{L: t.X - hw, B: t.Y - hh, R: t.X + hw, T: t.Y + hh}
}

// Overlaps reports whether a and b share interior area. Boxes that only touch
// along an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

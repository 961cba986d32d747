package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Animation cycles through Frames, advancing once Counter exceeds
// TickLength. After the last frame playback wraps to LoopFrom.
type Animation struct {
	Frames     []*ebiten.Image
	TickLength int
	LoopFrom   int
	Index      int
	Counter    int
}

var AnimationComponent = NewComponent[Animation]()

package component

// Scroll moves world obstacles left at Speed px per tick while playing.
type Scroll struct {
	Speed float64
}

var ScrollComponent = NewComponent[Scroll]()

// Parallax scrolls a background layer and snaps it back to x=0 once it has
// travelled Wrap pixels.
type Parallax struct {
	Speed float64
	Wrap  float64
}

var ParallaxComponent = NewComponent[Parallax]()

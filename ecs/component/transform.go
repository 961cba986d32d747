package component

// Transform positions an entity. X/Y is where the sprite origin lands on
// screen; for colliders it is the box centre. Rotation is in radians,
// clockwise on screen.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

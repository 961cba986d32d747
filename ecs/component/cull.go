package component

// Cull destroys an entity once its collider leaves the screen on a flagged
// side.
type Cull struct {
	Left  bool
	Right bool
}

var CullComponent = NewComponent[Cull]()

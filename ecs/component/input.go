package component

// Input stores the per-tick input snapshot. *Held mirrors the raw button
// state; *Pressed is true only on the tick the button went down.
type Input struct {
	JumpHeld     bool
	JumpPressed  bool
	ShootHeld    bool
	ShootPressed bool
	Restart      bool
	Quit         bool
}

var InputComponent = NewComponent[Input]()

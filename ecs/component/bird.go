package component

// Bird is the player's flight model.
type Bird struct {
	Velocity     float64
	Acceleration float64
	MaxSpeed     float64
	JumpForce    float64
	// Tilt converts velocity to a pose angle in degrees.
	Tilt   float64
	StartX float64
	StartY float64
}

var BirdComponent = NewComponent[Bird]()

package component

// PlayerTag marks the bird.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

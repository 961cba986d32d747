package component

// Pipe is one half of a pipe pair. Pair ties it to its gate.
type Pipe struct {
	Pair    int
	Flipped bool
}

var PipeComponent = NewComponent[Pipe]()

// Gate spans the gap of a pipe pair and carries its scoring state. Passed is
// set while the bird sits inside the gap after scoring; Cleared once the bird
// is fully past it.
type Gate struct {
	Pair    int
	Passed  bool
	Cleared bool
}

var GateComponent = NewComponent[Gate]()

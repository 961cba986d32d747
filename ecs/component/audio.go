package component

// Cue is a fire-and-forget sound. *audio.Player satisfies it.
type Cue interface {
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Audio holds named cues. Systems set Play[i] through Request; the audio
// system fires and clears the flags once per tick.
type Audio struct {
	Names   []string
	Players []Cue
	Volume  []float64
	Play    []bool
}

var AudioComponent = NewComponent[Audio]()

// Request flags the named cue for playback. Unknown names are ignored.
func (a *Audio) Request(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return
		}
	}
}

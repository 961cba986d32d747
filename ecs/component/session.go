package component

type Phase int

const (
	// PhaseReady waits for the first jump or shoot; nothing moves but the
	// bird's wing animation.
	PhaseReady Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type Session struct {
	Phase Phase
	Score int
	// Ticks counts playing ticks since the last (re)start.
	Ticks int
}

var SessionComponent = NewComponent[Session]()

// Spawner holds the pipe and enemy spawn timers, in ticks.
type Spawner struct {
	PipeTimer  int
	EnemyTimer int
	NextPair   int
}

var SpawnerComponent = NewComponent[Spawner]()

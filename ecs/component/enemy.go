package component

type Enemy struct {
	SpeedX    float64
	Amplitude float64
	WaveTimer float64
	WaveStep  float64
	Color     string
}

var EnemyComponent = NewComponent[Enemy]()

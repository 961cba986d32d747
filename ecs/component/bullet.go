package component

type Bullet struct {
	Speed     float64
	Direction float64
}

var BulletComponent = NewComponent[Bullet]()

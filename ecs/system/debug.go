package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// DebugSystem outlines colliders and prints session state.
type DebugSystem struct{}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	outline := map[component.Kind]color.Color{
		component.PlayerTagComponent.Kind(): color.RGBA{R: 255, G: 255, A: 255},
		component.PipeComponent.Kind():      color.RGBA{G: 255, A: 255},
		component.GateComponent.Kind():      color.RGBA{G: 128, B: 255, A: 255},
		component.EnemyComponent.Kind():     color.RGBA{R: 255, A: 255},
		component.BulletComponent.Kind():    color.RGBA{R: 255, G: 128, A: 255},
	}
	for kind, clr := range outline {
		for _, b := range bodies(w, kind) {
			vector.StrokeRect(screen, float32(b.bb.L), float32(b.bb.B), float32(b.bb.R-b.bb.L), float32(b.bb.T-b.bb.B), 1, clr, false)
		}
	}

	s := sessionState(w)
	if s == nil {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  phase %s  score %d  ticks %d  entities %d",
		ebiten.ActualTPS(), s.Phase, s.Score, s.Ticks, len(ecs.Entities(w))))
}

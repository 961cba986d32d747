package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// RawInput is the device state for one tick. Jump and Shoot are held
// states; Restart and Quit are already edges.
type RawInput struct {
	Jump    bool
	Shoot   bool
	Restart bool
	Quit    bool
}

// InputSource is polled once per tick.
type InputSource interface {
	Poll() RawInput
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	raw := i.source.Poll()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.JumpPressed = raw.Jump && !input.JumpHeld
		input.JumpHeld = raw.Jump
		input.ShootPressed = raw.Shoot && !input.ShootHeld
		input.ShootHeld = raw.Shoot
		input.Restart = raw.Restart
		input.Quit = raw.Quit
	})
}

// EbitenInput reads keyboard, mouse and the first standard gamepad.
type EbitenInput struct{}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) Poll() RawInput {
	raw := RawInput{
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Shoot: ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		raw.Jump = raw.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		raw.Shoot = raw.Shoot || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		raw.Restart = raw.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return raw
}

package assets

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/flappyshooter/prefabs"
)

const (
	birdFrameCount   = 3
	bulletFrameCount = 5
)

// Library holds every image and sound a run needs. A zero Library is valid
// and draws nothing, which is what headless tests use.
type Library struct {
	Birds    map[string][]*ebiten.Image
	Pipe     *ebiten.Image
	Bullet   []*ebiten.Image
	Digits   [10]*ebiten.Image
	Restart  *ebiten.Image
	GameOver *ebiten.Image
	Layers   map[string]*ebiten.Image
	Sounds   map[string]*audio.Player
}

// BirdPath is the frame image for a bird colour.
func BirdPath(color string, frame int) string {
	return fmt.Sprintf("images/birds/%sbird%d.png", color, frame)
}

// BulletPath is the frame image for a projectile.
func BulletPath(frame int) string {
	return fmt.Sprintf("images/projectile/fire%d.png", frame)
}

// DigitPath is the HUD glyph for d.
func DigitPath(d int) string {
	return fmt.Sprintf("images/numbers/%d.png", d)
}

// LayerPath is the strip image for a background layer.
func LayerPath(name string) string {
	return fmt.Sprintf("images/%s.png", name)
}

// LoadLibrary loads everything spec refers to. Every missing file is
// reported, not just the first.
func LoadLibrary(spec *prefabs.GameSpec) (*Library, error) {
	if spec == nil {
		return nil, errors.New("assets: nil game spec")
	}

	lib := &Library{
		Birds:  make(map[string][]*ebiten.Image),
		Layers: make(map[string]*ebiten.Image),
		Sounds: make(map[string]*audio.Player),
	}
	var errs []error
	load := func(path string) *ebiten.Image {
		img, err := LoadImage(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: %s: %w", path, err))
			return nil
		}
		return img
	}

	colors := append([]string{spec.Player.Color}, spec.Enemy.Colors...)
	for _, c := range colors {
		if _, ok := lib.Birds[c]; ok {
			continue
		}
		frames := make([]*ebiten.Image, 0, birdFrameCount)
		for i := range birdFrameCount {
			frames = append(frames, load(BirdPath(c, i)))
		}
		lib.Birds[c] = frames
	}

	lib.Pipe = load("images/pipe.png")
	for i := range bulletFrameCount {
		lib.Bullet = append(lib.Bullet, load(BulletPath(i)))
	}
	for d := range lib.Digits {
		lib.Digits[d] = load(DigitPath(d))
	}
	lib.Restart = load("images/restart.png")
	lib.GameOver = load("images/gameover.png")

	for _, layer := range spec.Background.Layers {
		lib.Layers[layer.Image] = load(LayerPath(layer.Image))
	}

	for _, a := range spec.Audio {
		player, err := LoadAudioPlayer(a.File)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: %s: %w", a.File, err))
			continue
		}
		lib.Sounds[a.Name] = player
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return lib, nil
}

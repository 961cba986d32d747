// Command preview cycles the embedded animation strips so art can be checked
// without playing a run.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/flappyshooter/assets"
)

const size = 512

type strip struct {
	name   string
	frames []*ebiten.Image
}

type previewGame struct {
	strips      []strip
	strip       int
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.strip = (g.strip + 1) % len(g.strips)
		g.current = 0
		g.tick = 0
	}
	frames := g.strips[g.strip].frames
	if len(frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x30, 0x30, 0x40, 0xff})
	s := g.strips[g.strip]
	ebitenutil.DebugPrint(screen, s.name+" (tab: next strip)")
	if len(s.frames) == 0 {
		return
	}
	frame := s.frames[g.current]
	fw := frame.Bounds().Dx()
	fh := frame.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(float64(size-fw*4)/2, float64(size-fh*4)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return size, size
}

func loadFrames(paths ...string) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := assets.LoadImage(p)
		if err != nil {
			log.Printf("failed to load %s: %v", p, err)
			continue
		}
		frames = append(frames, img)
	}
	return frames
}

func main() {
	fps := flag.Int("fps", 12, "animation frames per second")
	flag.Parse()

	var strips []strip
	for _, c := range []string{"yellow", "red", "blue"} {
		strips = append(strips, strip{
			name:   c + " bird",
			frames: loadFrames(assets.BirdPath(c, 0), assets.BirdPath(c, 1), assets.BirdPath(c, 2)),
		})
	}
	var bullet []string
	for i := range 5 {
		bullet = append(bullet, assets.BulletPath(i))
	}
	strips = append(strips, strip{name: "projectile", frames: loadFrames(bullet...)})

	ticks := 1
	if *fps > 0 {
		ticks = max(60 / *fps, 1)
	}

	g := &previewGame{strips: strips, ticksPerFrm: ticks}
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle("Sprite Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

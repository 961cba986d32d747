// Command placeholders regenerates the flat-colour stand-in art and sound
// cues under assets/.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
)

var birdColors = map[string]color.RGBA{
	"yellow": {250, 210, 40, 255},
	"red":    {220, 60, 50, 255},
	"blue":   {60, 110, 230, 255},
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func fill(w, h int, fn func(x, y int) color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := fn(x, y); c != nil {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

func bird(c color.RGBA, frame int) image.Image {
	wingY := []int{-6, 0, 6}[frame]
	return fill(51, 36, func(x, y int) color.Color {
		dx := float64(x-25) / 25
		dy := float64(y-18) / 17
		switch {
		case dx*dx+dy*dy <= 1:
			if (x-36)*(x-36)+(y-12)*(y-12) <= 9 {
				return color.White
			}
			wx := float64(x - 14)
			wy := float64(y - 20 - wingY)
			if wx*wx/64+wy*wy/16 <= 1 {
				return shade(c, 0.7)
			}
			return c
		case x >= 46 && x <= 50 && y >= 16 && y <= 21:
			return color.RGBA{240, 140, 30, 255}
		}
		return nil
	})
}

func pipe() image.Image {
	edge := color.RGBA{30, 80, 20, 255}
	return fill(78, 560, func(x, y int) color.Color {
		if y < 34 {
			if x < 2 || x > 75 || y < 2 || y > 31 {
				return edge
			}
			return color.RGBA{110, 200, 60, 255}
		}
		switch {
		case x < 6 || x > 71:
			return nil
		case x < 8 || x > 69:
			return edge
		}
		return color.RGBA{90, 180, 50, 255}
	})
}

type segment struct{ x0, x1, y0, y1 int }

var segments = map[byte]segment{
	'a': {4, 24, 2, 7}, 'g': {4, 24, 18, 23}, 'd': {4, 24, 33, 38},
	'f': {2, 7, 4, 20}, 'b': {21, 26, 4, 20}, 'e': {2, 7, 20, 36}, 'c': {21, 26, 20, 36},
}

var digitSegments = [10]string{"abcdef", "bc", "abged", "abgcd", "fgbc", "afgcd", "afgedc", "abc", "abcdefg", "abcdfg"}

func digit(d int) image.Image {
	on := func(x, y int) bool {
		for i := 0; i < len(digitSegments[d]); i++ {
			s := segments[digitSegments[d][i]]
			if x >= s.x0 && x < s.x1 && y >= s.y0 && y < s.y1 {
				return true
			}
		}
		return false
	}
	return fill(28, 40, func(x, y int) color.Color {
		if on(x, y) {
			return color.White
		}
		for _, o := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			if on(x+o[0], y+o[1]) {
				return color.Black
			}
		}
		return nil
	})
}

func fire(frame int) image.Image {
	r := 3 + float64(frame)*1.5
	return fill(32, 16, func(x, y int) color.Color {
		dx := float64(x - 22)
		dy := float64(y - 8)
		if dx < 0 {
			dx *= 0.5
		}
		d := math.Hypot(dx, dy)
		switch {
		case d <= r*0.5:
			return color.RGBA{255, 240, 120, 255}
		case d <= r:
			return color.RGBA{250, 130, 20, 255}
		}
		return nil
	})
}

func panel(w, h, border int, edge, body color.RGBA) image.Image {
	return fill(w, h, func(x, y int) color.Color {
		if x < border || x >= w-border || y < border || y >= h-border {
			return edge
		}
		return body
	})
}

func hills(base, amp, period float64, c color.RGBA) image.Image {
	return fill(900, 256, func(x, y int) color.Color {
		edge := base - amp*(0.5+0.5*math.Sin(float64(x)*2*math.Pi/period))
		if float64(y) >= edge {
			return c
		}
		return nil
	})
}

// writeWAV writes 16-bit stereo PCM at 44.1kHz.
func writeWAV(path string, seconds float64, fn func(t, p float64) float64) error {
	const rate = 44100
	n := int(rate * seconds)
	data := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / rate
		v := int16(math.Max(-1, math.Min(1, fn(t, t/seconds))) * 12000)
		data = binary.LittleEndian.AppendUint16(data, uint16(v))
		data = binary.LittleEndian.AppendUint16(data, uint16(v))
	}

	header := make([]byte, 0, 44)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(36+len(data)))
	header = append(header, "WAVEfmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, 1)
	header = binary.LittleEndian.AppendUint16(header, 2)
	header = binary.LittleEndian.AppendUint32(header, rate)
	header = binary.LittleEndian.AppendUint32(header, rate*4)
	header = binary.LittleEndian.AppendUint16(header, 4)
	header = binary.LittleEndian.AppendUint16(header, 16)
	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(data)))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(header, data...), 0o644)
}

func main() {
	root := flag.String("out", "assets", "assets directory to write into")
	flag.Parse()

	images := map[string]image.Image{
		"images/pipe.png":     pipe(),
		"images/restart.png":  panel(120, 42, 3, color.RGBA{40, 40, 40, 255}, color.RGBA{230, 120, 40, 255}),
		"images/gameover.png": panel(384, 84, 4, color.RGBA{60, 30, 10, 255}, color.RGBA{240, 170, 40, 255}),
		"images/bgupper.png": fill(900, 256, func(x, y int) color.Color {
			t := float64(y) / 256
			return color.RGBA{uint8(90 + 30*t), uint8(170 + 25*t), uint8(230 + 10*t), 255}
		}),
		"images/bgmidupper.png": hills(200, 120, 150, color.RGBA{150, 200, 230, 255}),
		"images/bgmidlower.png": hills(220, 90, 100, color.RGBA{90, 170, 90, 255}),
		"images/ground.png": fill(900, 168, func(x, y int) color.Color {
			if y < 24 {
				if (x/35+y/12)%2 == 0 {
					return color.RGBA{120, 200, 60, 255}
				}
				return color.RGBA{100, 180, 50, 255}
			}
			return color.RGBA{220, 200, 140, 255}
		}),
	}
	for name, c := range birdColors {
		for f := range 3 {
			images[fmt.Sprintf("images/birds/%sbird%d.png", name, f)] = bird(c, f)
		}
	}
	for d := range 10 {
		images[fmt.Sprintf("images/numbers/%d.png", d)] = digit(d)
	}
	for f := range 5 {
		images[fmt.Sprintf("images/projectile/fire%d.png", f)] = fire(f)
	}

	for name, img := range images {
		if err := writePNG(filepath.Join(*root, name), img); err != nil {
			log.Fatalf("placeholders: %s: %v", name, err)
		}
	}

	rng := rand.New(rand.NewPCG(7, 7))
	noise := func() float64 { return rng.Float64()*2 - 1 }
	sounds := []struct {
		name    string
		seconds float64
		fn      func(t, p float64) float64
	}{
		{"sounds/wing.wav", 0.12, func(t, p float64) float64 { return math.Sin(2*math.Pi*(300+600*p)*t) * (1 - p) }},
		{"sounds/point.wav", 0.25, func(t, p float64) float64 {
			f := 880.0
			if p >= 0.4 {
				f = 1320
			}
			return math.Sin(2*math.Pi*f*t) * (1 - p)
		}},
		{"sounds/hit.wav", 0.3, func(t, p float64) float64 {
			return (noise()*0.6 + math.Sin(2*math.Pi*110*t)*0.4) * (1 - p)
		}},
		{"sounds/flame.wav", 0.35, func(t, p float64) float64 { return noise() * (1 - p) * 0.7 }},
	}
	for _, s := range sounds {
		if err := writeWAV(filepath.Join(*root, s.name), s.seconds, s.fn); err != nil {
			log.Fatalf("placeholders: %s: %v", s.name, err)
		}
	}
	log.Printf("placeholders: wrote %d images and %d sounds under %s", len(images), len(sounds), *root)
}

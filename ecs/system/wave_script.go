package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/flappyshooter/prefabs"
)

// Wave yields an enemy's vertical step for one tick.
type Wave interface {
	DY(t, amplitude float64) float64
}

// SineWave is the built-in flight pattern.
type SineWave struct{}

func (SineWave) DY(t, amplitude float64) float64 {
	return amplitude * math.Sin(t)
}

// WaveScript runs a tengo script that reads t and amplitude and assigns dy.
// After the first runtime error it falls back to SineWave for good.
type WaveScript struct {
	path     string
	compiled *tengo.Compiled
	failed   bool
}

var errNoDY = errors.New("script does not assign dy")

func NewWaveScript(path string) (*WaveScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("wave script %s: %w", path, err)
	}
	return compileWaveScript(path, src)
}

func compileWaveScript(path string, src []byte) (*WaveScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("amplitude", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wave script %s: %w", path, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("wave script %s: %w", path, err)
	}
	if !compiled.IsDefined("dy") {
		return nil, fmt.Errorf("wave script %s: %w", path, errNoDY)
	}

	return &WaveScript{path: path, compiled: compiled}, nil
}

func (s *WaveScript) DY(t, amplitude float64) float64 {
	if s == nil || s.failed {
		return SineWave{}.DY(t, amplitude)
	}

	if err := s.run(t, amplitude); err != nil {
		log.Printf("enemy: wave script %s failed, using sine wave: %v", s.path, err)
		s.failed = true
		return SineWave{}.DY(t, amplitude)
	}
	return s.compiled.Get("dy").Float()
}

func (s *WaveScript) run(t, amplitude float64) error {
	if err := s.compiled.Set("t", t); err != nil {
		return err
	}
	if err := s.compiled.Set("amplitude", amplitude); err != nil {
		return err
	}
	return s.compiled.Run()
}

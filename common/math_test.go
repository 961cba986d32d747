package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"at bound", 1, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}

	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp int = %d, want 5", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(90); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Radians(90) = %v", got)
	}
	if got := Radians(0); got != 0 {
		t.Errorf("Radians(0) = %v", got)
	}
}

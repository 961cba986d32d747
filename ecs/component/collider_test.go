package component

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestBounds(t *testing.T) {
	bb := Bounds(&Transform{X: 100, Y: 50}, &Collider{Width: 20, Height: 10})
	want := cp.BB{L: 90, B: 45, R: 110, T: 55}
	if bb != want {
		t.Fatalf("Bounds = %+v, want %+v", bb, want)
	}
	if got := Bounds(nil, nil); got != (cp.BB{}) {
		t.Fatalf("Bounds(nil, nil) = %+v", got)
	}
}

func TestOverlaps(t *testing.T) {
	box := cp.BB{L: 0, B: 0, R: 10, T: 10}
	tests := []struct {
		name  string
		other cp.BB
		want  bool
	}{
		{"inside", cp.BB{L: 2, B: 2, R: 8, T: 8}, true},
		{"partial", cp.BB{L: 5, B: 5, R: 15, T: 15}, true},
		{"touching right edge", cp.BB{L: 10, B: 0, R: 20, T: 10}, false},
		{"touching bottom edge", cp.BB{L: 0, B: 10, R: 10, T: 20}, false},
		{"touching corner", cp.BB{L: 10, B: 10, R: 20, T: 20}, false},
		{"apart", cp.BB{L: 30, B: 30, R: 40, T: 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(box, tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", box, tt.other, got, tt.want)
			}
			if got := Overlaps(tt.other, box); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.other)
			}
		})
	}
}

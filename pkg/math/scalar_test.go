package math

import (
	stdmath "math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMix(t *testing.T) {
	if got := Mix(2, 4, 0.5); got != 3 {
		t.Errorf("Mix(2, 4, 0.5) = %v, want 3", got)
	}
	if got := Mix(1, 0.6, 1); got != 0.6 {
		t.Errorf("Mix(1, 0.6, 1) = %v, want 0.6", got)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(6, 13, 6); got != 0 {
		t.Errorf("Smoothstep at lower edge = %v, want 0", got)
	}
	if got := Smoothstep(6, 13, 13); got != 1 {
		t.Errorf("Smoothstep at upper edge = %v, want 1", got)
	}
	if got := Smoothstep(6, 13, 9.5); stdmath.Abs(got-0.5) > 1e-12 {
		t.Errorf("Smoothstep at midpoint = %v, want 0.5", got)
	}

	prev := -1.0
	for x := 5.0; x <= 14; x += 0.1 {
		v := Smoothstep(6, 13, x)
		if v < prev {
			t.Fatalf("Smoothstep not monotonic at %v: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestSmoothstepReversed(t *testing.T) {
	if got := Smoothstep(150, 0, 0); got != 1 {
		t.Errorf("Smoothstep(150, 0, 0) = %v, want 1", got)
	}
	if got := Smoothstep(150, 0, 200); got != 0 {
		t.Errorf("Smoothstep(150, 0, 200) = %v, want 0", got)
	}
}

func TestSmoothstepEqualEdges(t *testing.T) {
	if got := Smoothstep(4, 4, 3); got != 0 {
		t.Errorf("below equal edges = %v, want 0", got)
	}
	if got := Smoothstep(4, 4, 6); got != 1 {
		t.Errorf("above equal edges = %v, want 1", got)
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
	}
	for _, tt := range tests {
		if got := Fract(tt.x); stdmath.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Fract(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

package atmosphere

import "testing"

func TestSkyWeights_Monotonic(t *testing.T) {
	prev := ComputeSkyWeights(MinTime)
	for tm := MinTime; tm <= MaxTime; tm += 0.05 {
		w := ComputeSkyWeights(tm)
		if w.Midday < prev.Midday {
			t.Errorf("midday weight fell at %v: %v < %v", tm, w.Midday, prev.Midday)
		}
		if w.Evening < prev.Evening {
			t.Errorf("evening weight fell at %v: %v < %v", tm, w.Evening, prev.Evening)
		}
		sum := w.MorningShare + w.MiddayShare + w.EveningShare
		if !nearlyEqual(sum, 1, epsilon) {
			t.Errorf("shares sum to %v at %v", sum, tm)
		}
		for _, s := range []float64{w.MorningShare, w.MiddayShare, w.EveningShare} {
			if s < 0 || s > 1 {
				t.Errorf("share %v out of [0,1] at %v", s, tm)
			}
		}
		prev = w
	}
}

func TestSkyWeights_Windows(t *testing.T) {
	w := ComputeSkyWeights(6)
	if w.Midday != 0 || w.Evening != 0 {
		t.Errorf("6:00 weights = %+v, want zero", w)
	}
	w = ComputeSkyWeights(13)
	if w.Midday != 1 || w.Evening != 0 {
		t.Errorf("13:00 weights = %+v, want midday 1 evening 0", w)
	}
	w = ComputeSkyWeights(18)
	if w.Evening != 1 {
		t.Errorf("18:00 evening weight = %v, want 1", w.Evening)
	}
}

func TestSkyColor(t *testing.T) {
	tests := []struct {
		time    float64
		r, g, b float64
	}{
		{6, 0.9, 0.6, 0.3},
		{13, 0.1, 0.6, 1.0},
		{18, 0.9, 0.6, 0.3},
	}
	for _, tt := range tests {
		c := SkyColor(tt.time)
		if !nearlyEqual(c.R, tt.r, epsilon) || !nearlyEqual(c.G, tt.g, epsilon) || !nearlyEqual(c.B, tt.b, epsilon) {
			t.Errorf("SkyColor(%v) = %+v, want (%v, %v, %v)", tt.time, c, tt.r, tt.g, tt.b)
		}
	}
}

func TestComputeSky_Hex(t *testing.T) {
	p := ComputeSky(13)
	if p.Hex == "" || p.Hex[0] != '#' {
		t.Errorf("Hex = %q, want #rrggbb", p.Hex)
	}
	if p.Time != 13 {
		t.Errorf("Time = %v, want 13", p.Time)
	}
}

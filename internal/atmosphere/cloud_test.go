package atmosphere

import "testing"

func TestCloudDensity(t *testing.T) {
	prev := -1.0
	for okta := 0.0; okta <= 8; okta += 0.5 {
		d := CloudDensity(okta)
		if d != okta/4 {
			t.Errorf("CloudDensity(%v) = %v, want %v", okta, d, okta/4)
		}
		if d < prev {
			t.Errorf("CloudDensity not monotonic at okta %v", okta)
		}
		if d < 0 || d > MaxCloudDensity {
			t.Errorf("CloudDensity(%v) = %v out of [0,2]", okta, d)
		}
		prev = d
	}
}

func TestCloudThreshold(t *testing.T) {
	lower, upper := CloudThreshold(0)
	if lower != 0.5 || upper != 5.5 {
		t.Errorf("CloudThreshold(0) = (%v, %v), want (0.5, 5.5)", lower, upper)
	}

	lower2, _ := CloudThreshold(2)
	if lower2 >= lower {
		t.Errorf("denser sky should lower the threshold: %v >= %v", lower2, lower)
	}
}

func TestCloudCoverage_IncreasesWithDensity(t *testing.T) {
	f := NewCloudField(nil)

	for _, p := range [][2]float64{{0, 0}, {12.5, -40}, {-77, 3.3}, {50, 50}} {
		prev := -1.0
		for okta := 0.0; okta <= 8; okta++ {
			a := f.Coverage(p[0], p[1], 12, CloudDensity(okta))
			if a < 0 || a > 1 {
				t.Fatalf("coverage %v out of [0,1] at %v", a, p)
			}
			if a < prev {
				t.Errorf("coverage fell from %v to %v at %v okta %v", prev, a, p, okta)
			}
			prev = a
		}
	}
}

func TestCloudField_Drift(t *testing.T) {
	f := NewCloudField(nil)
	// One hour of time drifts the field by CloudDriftRate in noise space,
	// which equals a world shift of CloudDriftRate/CloudCoordScale along x.
	shift := CloudDriftRate / CloudCoordScale
	a := f.Sample(10, 20, 7)
	b := f.Sample(10+shift, 20, 6)
	if !nearlyEqual(a, b, 1e-9) {
		t.Errorf("drift mismatch: %v vs %v", a, b)
	}
}

func TestCloudColor_DarkensWithDensity(t *testing.T) {
	tests := []struct {
		okta  float64
		wantR float64
	}{
		{0, 1},
		{4, 0.6},
		{8, 0.2}, // mix extrapolates past density 1
	}
	for _, tt := range tests {
		c := CloudColor(6, CloudDensity(tt.okta), 0)
		if !nearlyEqual(c.R, tt.wantR, epsilon) {
			t.Errorf("morning cloud R at okta %v = %v, want %v", tt.okta, c.R, tt.wantR)
		}
	}
}

func TestCloudColor_Evening(t *testing.T) {
	c := CloudColor(18, 0, 0)
	if !nearlyEqual(c.R, 0.9, epsilon) || !nearlyEqual(c.G, 0.7, epsilon) || !nearlyEqual(c.B, 0.5, epsilon) {
		t.Errorf("evening cloud = %+v, want (0.9, 0.7, 0.5)", c)
	}
}

package geometry

import (
	"math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		wantVerts     int
		wantTriangles int
	}{
		{"sky", 32, 32, 33 * 33, 32 * (2*32 - 2)},
		{"sun", 16, 16, 17 * 17, 16 * (2*16 - 2)},
		{"clamped", 1, 1, 4 * 3, 3 * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Sphere(10, tt.w, tt.h)
			if m.VertexCount() != tt.wantVerts {
				t.Errorf("vertices = %d, want %d", m.VertexCount(), tt.wantVerts)
			}
			if m.TriangleCount() != tt.wantTriangles {
				t.Errorf("triangles = %d, want %d", m.TriangleCount(), tt.wantTriangles)
			}
			if len(m.UVs)/2 != m.VertexCount() {
				t.Errorf("uv count %d does not match vertex count %d", len(m.UVs)/2, m.VertexCount())
			}
		})
	}
}

func TestSphereRadius(t *testing.T) {
	const r = 107
	m := Sphere(r, 32, 32)
	for i := 0; i < len(m.Positions); i += 3 {
		x, y, z := float64(m.Positions[i]), float64(m.Positions[i+1]), float64(m.Positions[i+2])
		if d := math.Sqrt(x*x + y*y + z*z); math.Abs(d-r) > 1e-3 {
			t.Fatalf("vertex %d at distance %v, want %v", i/3, d, r)
		}
	}
}

func TestRingCounts(t *testing.T) {
	m := Ring(56, 65, 128, 1, 0, math.Pi)
	if got, want := m.VertexCount(), 2*129; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 2*128; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
}

func TestRingUVRadius(t *testing.T) {
	m := Ring(25, 50, 64, 1, 0, 2*math.Pi)
	for i := 0; i < len(m.UVs); i += 2 {
		du := float64(m.UVs[i]) - 0.5
		dv := float64(m.UVs[i+1]) - 0.5
		d := math.Sqrt(du*du + dv*dv)
		// inner row maps to 0.25, outer row to 0.5
		if math.Abs(d-0.25) > 1e-4 && math.Abs(d-0.5) > 1e-4 {
			t.Fatalf("uv %d at radius %v, want 0.25 or 0.5", i/2, d)
		}
	}
}

func TestCircleCounts(t *testing.T) {
	m := Circle(100, 64)
	if got, want := m.VertexCount(), 66; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 64; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

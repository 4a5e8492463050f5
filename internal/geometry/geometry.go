// Package geometry builds the indexed meshes used by the sky scene: spheres
// for the sky, clouds and sun, rings for halos and rainbows, and discs for the
// corona and the ground.
package geometry

import (
	"math"
)

// Mesh is an indexed triangle mesh ready for GPU upload.
type Mesh struct {
	Positions []float32 // x,y,z per vertex
	UVs       []float32 // u,v per vertex
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) vertex(x, y, z, u, v float64) {
	m.Positions = append(m.Positions, float32(x), float32(y), float32(z))
	m.UVs = append(m.UVs, float32(u), float32(v))
}

func (m *Mesh) triangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Sphere builds a UV sphere centered on the origin. The poles sit on the
// y axis; degenerate pole triangles are skipped.
func Sphere(radius float64, widthSegs, heightSegs int) *Mesh {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 2)

	m := &Mesh{
		Positions: make([]float32, 0, (widthSegs+1)*(heightSegs+1)*3),
		UVs:       make([]float32, 0, (widthSegs+1)*(heightSegs+1)*2),
	}

	for iy := 0; iy <= heightSegs; iy++ {
		v := float64(iy) / float64(heightSegs)
		theta := v * math.Pi
		for ix := 0; ix <= widthSegs; ix++ {
			u := float64(ix) / float64(widthSegs)
			phi := u * 2 * math.Pi
			m.vertex(
				-radius*math.Cos(phi)*math.Sin(theta),
				radius*math.Cos(theta),
				radius*math.Sin(phi)*math.Sin(theta),
				u, 1-v,
			)
		}
	}

	row := uint32(widthSegs + 1)
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				m.triangle(a, b, d)
			}
			if iy != heightSegs-1 {
				m.triangle(b, c, d)
			}
		}
	}
	return m
}

// Ring builds a flat annulus in the xy plane between inner and outer radius,
// sweeping thetaLength radians from thetaStart. UVs map the outer radius to
// the unit square, so the UV distance from (0.5,0.5) grows with radius.
func Ring(inner, outer float64, thetaSegs, phiSegs int, thetaStart, thetaLength float64) *Mesh {
	thetaSegs = max(thetaSegs, 3)
	phiSegs = max(phiSegs, 1)

	m := &Mesh{}
	radius := inner
	step := (outer - inner) / float64(phiSegs)
	for j := 0; j <= phiSegs; j++ {
		for i := 0; i <= thetaSegs; i++ {
			seg := thetaStart + float64(i)/float64(thetaSegs)*thetaLength
			x := radius * math.Cos(seg)
			y := radius * math.Sin(seg)
			m.vertex(x, y, 0, (x/outer+1)/2, (y/outer+1)/2)
		}
		radius += step
	}

	stride := uint32(thetaSegs + 1)
	for j := 0; j < phiSegs; j++ {
		level := uint32(j) * stride
		for i := 0; i < thetaSegs; i++ {
			s := uint32(i) + level
			a, b, c, d := s, s+stride, s+stride+1, s+1
			m.triangle(a, b, d)
			m.triangle(b, c, d)
		}
	}
	return m
}

// Circle builds a filled disc in the xy plane as a triangle fan around a
// center vertex.
func Circle(radius float64, segments int) *Mesh {
	segments = max(segments, 3)

	m := &Mesh{}
	m.vertex(0, 0, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		seg := float64(i) / float64(segments) * 2 * math.Pi
		x := radius * math.Cos(seg)
		y := radius * math.Sin(seg)
		m.vertex(x, y, 0, (x/radius+1)/2, (y/radius+1)/2)
	}
	for i := 1; i <= segments; i++ {
		m.triangle(uint32(i), uint32(i+1), 0)
	}
	return m
}

package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyoptics/internal/geometry"
)

// gpuMesh is an uploaded indexed mesh: positions at attribute 0, UVs at 1.
type gpuMesh struct {
	vao, vbo, uvbo, ebo uint32
	count               int32
}

func uploadMesh(m *geometry.Mesh) *gpuMesh {
	g := &gpuMesh{count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &g.uvbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.uvbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.UVs)*4, gl.Ptr(m.UVs), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (g *gpuMesh) destroy() {
	buffers := []uint32{g.vbo, g.uvbo, g.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	*g = gpuMesh{}
}

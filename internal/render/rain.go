package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/internal/render/shaders"
)

// Rain point appearance.
var (
	RainColor     = mustHex("#aaaaaa")
	RainPointSize = float32(2)
)

// RainRenderer draws the active prefix of the rain buffer as points. The
// GPU buffer is sized for the full capacity once; each frame only the
// active prefix is re-uploaded.
type RainRenderer struct {
	prog     *Program
	vao, vbo uint32
	capacity int
	state    atmosphere.RainState
}

// NewRainRenderer allocates a dynamic vertex buffer for capacity drops.
func NewRainRenderer(capacity int) (*RainRenderer, error) {
	prog, err := NewProgram(shaders.RainVertex, shaders.RainFragment, "uViewProj", "uPointSize", "uColor", "uOpacity")
	if err != nil {
		return nil, err
	}

	r := &RainRenderer{prog: prog, capacity: capacity}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return r, nil
}

// SetRain implements atmosphere.RainTarget.
func (r *RainRenderer) SetRain(s atmosphere.RainState) {
	r.state = s
	n := min(s.ActiveCount, r.capacity, len(s.Positions)/3)
	if n == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*3*4, gl.Ptr(s.Positions[:n*3]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the visible drops.
func (r *RainRenderer) Render(viewProj mgl32.Mat4) {
	n := min(r.state.ActiveCount, r.capacity)
	if !r.state.Visible || n == 0 {
		return
	}
	r.prog.Use()
	r.prog.SetMat4("uViewProj", viewProj)
	r.prog.SetFloat("uPointSize", RainPointSize)
	r.prog.SetVec3("uColor", RainColor)
	r.prog.SetFloat("uOpacity", float32(r.state.Opacity))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
	gl.BindVertexArray(0)
}

// Destroy releases the buffer and program.
func (r *RainRenderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.prog.Destroy()
}

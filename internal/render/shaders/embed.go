// Package shaders holds the GLSL sources for the sky scene.
package shaders

import _ "embed"

// Mesh vertex shader shared by every surface renderer.
//
//go:embed mesh.vert
var MeshVertex string

//go:embed sky.frag
var SkyFragment string

//go:embed clouds.frag
var CloudsFragment string

//go:embed solid.frag
var SolidFragment string

//go:embed halo.frag
var HaloFragment string

//go:embed rainbow.frag
var RainbowFragment string

//go:embed ground.frag
var GroundFragment string

//go:embed rain.vert
var RainVertex string

//go:embed rain.frag
var RainFragment string

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"shootingrange/internal/mesh"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// gpuMesh is a static triangle list uploaded once at startup.
type gpuMesh struct {
	vao, vbo uint32
	count    int32
}

// Material picks how a mesh is shaded.
type Material struct {
	Color RGB
	Alpha float32
	Unlit bool
}

func Solid(c RGB) Material { return Material{Color: c, Alpha: 1} }

type Renderer struct {
	// Lit mesh program.
	meshProg     uint32
	uModel       int32
	uView        int32
	uProj        int32
	uColor       int32
	uAlpha       int32
	uUnlit       int32
	uLightDir    int32
	uAmbient     int32
	uDirectional int32
	uFogColor    int32
	uFogNear     int32
	uFogFar      int32
	uFog         int32
	meshes       []gpuMesh

	// Spark point sprites.
	sparkProg    uint32
	sparkVAO     uint32
	sparkVBO     uint32
	spUView      int32
	spUProj      int32
	spUViewportH int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	sparkProg, err := linkProgram(sparkVertSrc, sparkFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("spark program: %w", err)
	}

	r := &Renderer{
		meshProg:  meshProg,
		sparkProg: sparkProg,
	}

	gl.UseProgram(meshProg)
	r.uModel = gl.GetUniformLocation(meshProg, gl.Str("uModel\x00"))
	r.uView = gl.GetUniformLocation(meshProg, gl.Str("uView\x00"))
	r.uProj = gl.GetUniformLocation(meshProg, gl.Str("uProj\x00"))
	r.uColor = gl.GetUniformLocation(meshProg, gl.Str("uColor\x00"))
	r.uAlpha = gl.GetUniformLocation(meshProg, gl.Str("uAlpha\x00"))
	r.uUnlit = gl.GetUniformLocation(meshProg, gl.Str("uUnlit\x00"))
	r.uLightDir = gl.GetUniformLocation(meshProg, gl.Str("uLightDir\x00"))
	r.uAmbient = gl.GetUniformLocation(meshProg, gl.Str("uAmbient\x00"))
	r.uDirectional = gl.GetUniformLocation(meshProg, gl.Str("uDirectional\x00"))
	r.uFogColor = gl.GetUniformLocation(meshProg, gl.Str("uFogColor\x00"))
	r.uFogNear = gl.GetUniformLocation(meshProg, gl.Str("uFogNear\x00"))
	r.uFogFar = gl.GetUniformLocation(meshProg, gl.Str("uFogFar\x00"))
	r.uFog = gl.GetUniformLocation(meshProg, gl.Str("uFog\x00"))

	// Sun sits at (50, 50, 50) looking at the origin.
	sun := mgl32.Vec3{50, 50, 50}.Normalize()
	gl.Uniform3f(r.uLightDir, sun[0], sun[1], sun[2])
	gl.Uniform1f(r.uAmbient, AmbientLight)
	gl.Uniform1f(r.uDirectional, DirectionalLight)
	sky := Palette.Sky.Vec()
	gl.Uniform3f(r.uFogColor, sky[0], sky[1], sky[2])
	gl.Uniform1f(r.uFogNear, FogNear)
	gl.Uniform1f(r.uFogFar, FogFar)
	gl.Uniform1i(r.uFog, 1)

	// Spark VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, z, size, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticles*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.sparkVAO = sVAO
	r.sparkVBO = sVBO

	gl.UseProgram(sparkProg)
	r.spUView = gl.GetUniformLocation(sparkProg, gl.Str("uView\x00"))
	r.spUProj = gl.GetUniformLocation(sparkProg, gl.Str("uProj\x00"))
	r.spUViewportH = gl.GetUniformLocation(sparkProg, gl.Str("uViewportH\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

// Upload copies a mesh to the GPU. The renderer owns the buffers.
func (r *Renderer) Upload(m *mesh.Mesh) gpuMesh {
	var g gpuMesh
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	g.count = m.VertexCount()
	r.meshes = append(r.meshes, g)
	return g
}

func (r *Renderer) Destroy() {
	for _, m := range r.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, id := range []uint32{r.sparkVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.sparkVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.sparkProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to the sky colour and loads the camera into every 3D
// program.
func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sky := Palette.Sky.Vec()
	gl.ClearColor(sky[0], sky[1], sky[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	view := cam.View()
	proj := cam.Projection()

	gl.UseProgram(r.sparkProg)
	gl.UniformMatrix4fv(r.spUView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.spUProj, 1, false, &proj[0])
	gl.Uniform1f(r.spUViewportH, float32(fbH))

	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.Uniform1i(r.uFog, 1)
}

// BeginViewmodel starts the gun pass: depth is cleared so the gun never
// clips into walls, and fog is off since it sits at the eye.
func (r *Renderer) BeginViewmodel() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.meshProg)
	gl.Uniform1i(r.uFog, 0)
}

// DrawMesh draws one mesh with the lit program. Translucent materials are
// alpha blended without depth writes.
func (r *Renderer) DrawMesh(m gpuMesh, model mgl32.Mat4, mat Material) {
	if m.count == 0 || mat.Alpha <= 0 {
		return
	}
	gl.UseProgram(r.meshProg)
	gl.BindVertexArray(m.vao)
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	c := mat.Color.Vec()
	gl.Uniform3f(r.uColor, c[0], c[1], c[2])
	gl.Uniform1f(r.uAlpha, mat.Alpha)
	unlit := int32(0)
	if mat.Unlit {
		unlit = 1
	}
	gl.Uniform1i(r.uUnlit, unlit)

	translucent := mat.Alpha < 1
	if translucent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	if translucent {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

// DrawSparks renders world-space point sprites with additive blending.
// buf format: [x, y, z, size, r, g, b, a] * N.
func (r *Renderer) DrawSparks(buf []float32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticles {
		count = MaxParticles
	}
	gl.UseProgram(r.sparkProg)
	gl.BindVertexArray(r.sparkVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sparkVBO)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DepthMask(false)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*8*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

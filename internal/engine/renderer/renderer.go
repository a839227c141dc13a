// Package renderer draws batched debug lines with OpenGL. It implements
// the stipple.LineDrawer contract: segments accumulate between Begin and
// Flush, and segments with a positive duration are retained and redrawn
// until they expire.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stipple-dev/stipple"
	"github.com/stipple-dev/stipple/internal/engine/shader"
	"github.com/stipple-dev/stipple/internal/logger"
	"github.com/stipple-dev/stipple/pkg/math"
)

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;

out vec4 vColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles OpenGL line rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program     uint32
	locViewProj int32

	vao uint32
	vbo uint32

	lines batch

	// Scratch vertex streams reused across frames
	depthVerts   []float32
	overlayVerts []float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:       cfg,
		log:          logger.Named("renderer"),
		depthVerts:   make([]float32, 0, 4096),
		overlayVerts: make([]float32, 0, 4096),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background

	program, err := shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}
	r.program = program
	r.locViewProj = shader.MustGetUniform(program, "uViewProj")

	r.createBuffers()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame at the given animation clock reading. Expired
// timed lines are dropped here.
func (r *Renderer) Begin(now float64) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.lines.begin(now)
}

// DrawLine queues one segment for this frame. A positive duration keeps
// it on screen that many seconds. Satisfies stipple.LineDrawer.
func (r *Renderer) DrawLine(start, end math.Vec3, color stipple.Color, duration float32, depthTest bool) {
	r.lines.add(line{
		from:      start,
		to:        end,
		color:     color,
		depthTest: depthTest,
	}, duration)
}

// LineCount returns the number of segments queued for the current frame.
func (r *Renderer) LineCount() int {
	return r.lines.count()
}

// Flush renders all queued segments with the given view-projection
// matrix. Depth-tested segments draw first, then overlay segments on
// top with the depth test disabled.
func (r *Renderer) Flush(viewProj math.Mat4) {
	r.depthVerts, r.overlayVerts = r.lines.appendVertices(r.depthVerts[:0], r.overlayVerts[:0])
	if len(r.depthVerts) == 0 && len(r.overlayVerts) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	if len(r.depthVerts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(r.depthVerts)*4, unsafe.Pointer(&r.depthVerts[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(len(r.depthVerts)/floatsPerVertex))
	}

	if len(r.overlayVerts) > 0 {
		gl.Disable(gl.DEPTH_TEST)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.overlayVerts)*4, unsafe.Pointer(&r.overlayVerts[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(len(r.overlayVerts)/floatsPerVertex))
		gl.Enable(gl.DEPTH_TEST)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// createBuffers sets up the line VAO/VBO. Vertex data is respecified
// each flush, so only the attribute layout is configured here.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, floatsPerVertex*4, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, floatsPerVertex*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("line buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}

package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/soccerworks/pitchmesh/internal/field"
	"github.com/soccerworks/pitchmesh/internal/logger"
	"github.com/soccerworks/pitchmesh/pkg/geom"
)

var (
	turfColor   = [4]float32{0.25, 0.6, 0.2, 1}
	lineColor   = [4]float32{0.92, 0.92, 0.92, 1}
	groundColor = [4]float32{0.15, 0.35, 0.12, 1}
)

// Renderer owns the GL resources for one pitch mesh: a shared vertex
// buffer and one index buffer per layer.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	fillEBO   uint32
	fillCount int32
	lineEBO   uint32
	lineCount int32

	groundVAO   uint32
	groundVBO   uint32
	groundCount int32

	goalVAO   uint32
	goalVBO   uint32
	goalCount int32

	model geom.Mat4

	locProjection int32
	locView       int32
	locModel      int32
	locColor      int32
}

// NewRenderer compiles the shader program and uploads the mesh. Must be
// called with a current GL context.
func NewRenderer(f *field.Field) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	program, err := compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling pitch shader: %w", err)
	}

	r := &Renderer{
		program:       program,
		locProjection: getUniform(program, "projection"),
		locView:       getUniform(program, "view"),
		locModel:      getUniform(program, "model"),
		locColor:      getUniform(program, "color"),
	}

	r.model = geom.Translate(
		float32(f.Params.Position.X),
		float32(f.Params.Position.Y),
		float32(f.Params.Position.Z),
	).Mul(geom.RotateAxisAngle(f.Params.Orientation))

	r.uploadMesh(&f.Mesh)
	r.uploadGround(f.Ground)
	r.uploadGoals(f)
	return r, nil
}

func (r *Renderer) uploadMesh(m *field.Mesh) {
	vertices := make([]float32, 0, 3*len(m.Points))
	for _, p := range m.Points {
		vertices = append(vertices, float32(p.X), float32(p.Y), float32(p.Z))
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)

	r.fillEBO, r.fillCount = uploadIndices(m.FillTriangles)
	r.lineEBO, r.lineCount = uploadIndices(m.LineTriangles)

	gl.BindVertexArray(0)
}

func uploadIndices(tris []field.Triangle) (uint32, int32) {
	indices := make([]uint32, 0, 3*len(tris))
	for _, t := range tris {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)
	return ebo, int32(len(indices))
}

// uploadGround builds a quad slightly under the mesh so the border of
// the extent reads against the background.
func (r *Renderer) uploadGround(g field.GroundPlane) {
	hx := float32(g.Length / 2)
	hy := float32(g.Width / 2)
	z := float32(-0.002)
	quad := []float32{
		-hx, -hy, z,
		hx, -hy, z,
		hx, hy, z,
		-hx, -hy, z,
		hx, hy, z,
		-hx, hy, z,
	}

	gl.GenVertexArrays(1, &r.groundVAO)
	gl.BindVertexArray(r.groundVAO)
	gl.GenBuffers(1, &r.groundVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.groundVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(quad), gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.BindVertexArray(0)
	r.groundCount = 6
}

// uploadGoals builds a wire outline per goal placement: front posts and
// crossbar on the goal line, a matching back frame one goal depth behind
// it. Goal placements already carry the field pose, so these vertices
// are in world coordinates.
func (r *Renderer) uploadGoals(f *field.Field) {
	d := f.Dimensions
	w2 := d.GoalWidth / 2
	depth := d.GoalDepth
	height := d.GoalDepth // outline only; the real sub-assembly is external

	var lines []float32
	for _, g := range f.Goals {
		p := func(local geom.Vec3) {
			world := g.Rotation.Apply(local).Add(g.Position)
			lines = append(lines, float32(world.X), float32(world.Y), float32(world.Z))
		}
		segment := func(a, b geom.Vec3) { p(a); p(b) }

		for _, y := range []float64{-w2, w2} {
			segment(geom.Vec3{X: 0, Y: y}, geom.Vec3{X: 0, Y: y, Z: height})
			segment(geom.Vec3{X: depth, Y: y}, geom.Vec3{X: depth, Y: y, Z: height})
			segment(geom.Vec3{X: 0, Y: y, Z: height}, geom.Vec3{X: depth, Y: y, Z: height})
		}
		segment(geom.Vec3{X: 0, Y: -w2, Z: height}, geom.Vec3{X: 0, Y: w2, Z: height})
		segment(geom.Vec3{X: depth, Y: -w2, Z: height}, geom.Vec3{X: depth, Y: w2, Z: height})
	}

	gl.GenVertexArrays(1, &r.goalVAO)
	gl.BindVertexArray(r.goalVAO)
	gl.GenBuffers(1, &r.goalVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.goalVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(lines), gl.Ptr(lines), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.BindVertexArray(0)
	r.goalCount = int32(len(lines) / 3)
}

// Draw renders the ground, turf and line layers for one frame.
func (r *Renderer) Draw(projection, view geom.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locModel, 1, false, r.model.Ptr())

	gl.BindVertexArray(r.groundVAO)
	gl.Uniform4fv(r.locColor, 1, &groundColor[0])
	gl.DrawArrays(gl.TRIANGLES, 0, r.groundCount)

	gl.BindVertexArray(r.vao)
	gl.Uniform4fv(r.locColor, 1, &turfColor[0])
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.fillEBO)
	gl.DrawElements(gl.TRIANGLES, r.fillCount, gl.UNSIGNED_INT, nil)

	// Nudge the line layer toward the camera so it never z-fights the turf.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(-1, -1)
	gl.Uniform4fv(r.locColor, 1, &lineColor[0])
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.lineEBO)
	gl.DrawElements(gl.TRIANGLES, r.lineCount, gl.UNSIGNED_INT, nil)
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	// Goal outlines are already posed in world space.
	identity := geom.Mat4Identity()
	gl.UniformMatrix4fv(r.locModel, 1, false, identity.Ptr())
	gl.BindVertexArray(r.goalVAO)
	gl.Uniform4fv(r.locColor, 1, &lineColor[0])
	gl.DrawArrays(gl.LINES, 0, r.goalCount)

	gl.BindVertexArray(0)
}

// Close releases the GL resources.
func (r *Renderer) Close() {
	gl.DeleteBuffers(1, &r.fillEBO)
	gl.DeleteBuffers(1, &r.lineEBO)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.groundVBO)
	gl.DeleteBuffers(1, &r.goalVBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteVertexArrays(1, &r.groundVAO)
	gl.DeleteVertexArrays(1, &r.goalVAO)
	gl.DeleteProgram(r.program)
}

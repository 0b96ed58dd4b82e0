package field

import (
	"math"

	"github.com/soccerworks/pitchmesh/pkg/geom"
)

// Triangle is an ordered triple of indices into a mesh's point pool.
// Winding is counter-clockwise when the pitch is viewed from above.
type Triangle [3]int

// Mesh is the generated geometry: one shared point pool and two disjoint
// triangle layers over it. It is built once and never mutated.
type Mesh struct {
	Points        []geom.Vec3
	FillTriangles []Triangle // turf surface
	LineTriangles []Triangle // painted markings
}

// FillIndexStream returns the fill layer as a flat coordIndex-style
// stream: three indices per triangle, each terminated by -1.
func (m *Mesh) FillIndexStream() []int {
	return indexStream(m.FillTriangles)
}

// LineIndexStream returns the line layer in the same flat form.
func (m *Mesh) LineIndexStream() []int {
	return indexStream(m.LineTriangles)
}

func indexStream(tris []Triangle) []int {
	out := make([]int, 0, 4*len(tris))
	for _, t := range tris {
		out = append(out, t[0], t[1], t[2], -1)
	}
	return out
}

// GoalPlacement positions one goal sub-assembly in world coordinates.
type GoalPlacement struct {
	Position geom.Vec3
	Rotation geom.AxisAngle
	Size     SizeClass
}

// GroundPlane is the flat extent under the whole pitch, border strips
// included, used for the bounding and collision footprint.
type GroundPlane struct {
	Length float64 // along x
	Width  float64 // along y
	Height float64 // z offset of the plane
}

// Params are the generation inputs. The zero value is not useful;
// start from DefaultParams.
type Params struct {
	Size        SizeClass
	Position    geom.Vec3
	Orientation geom.AxisAngle
	// TurfPhysics lifts the turf and line surfaces by TurfThickness and
	// requests a separate collision plane at that height.
	TurfPhysics    bool
	CircleVertices int // full-circle tessellation count
}

// DefaultParams returns the adult pitch at the origin with physics on.
func DefaultParams() Params {
	return Params{
		Size:           SizeAdult,
		Orientation:    geom.Identity(),
		TurfPhysics:    true,
		CircleVertices: DefaultCircleVertices,
	}
}

// Field is one generated pitch instance.
type Field struct {
	Params     Params
	Dimensions DimensionSet
	Mesh       Mesh
	Goals      [2]GoalPlacement
	Ground     GroundPlane
	// CollisionPlane is set only when turf physics is enabled; it is the
	// flat contact surface at turf height.
	CollisionPlane *GroundPlane
}

// New generates a pitch. Generation cannot fail: the size class enum is
// closed and everything else is closed-form arithmetic.
func New(p Params) *Field {
	if p.CircleVertices <= 0 {
		p.CircleVertices = DefaultCircleVertices
	}
	d := Dimensions(p.Size)

	depth := 0.0
	if p.TurfPhysics {
		depth = TurfThickness
	}

	cx := d.ExtentLength() / 2
	cy := d.ExtentWidth() / 2

	points := buildQuadrantPoints(d, depth)
	n := arcVertexCount(p.CircleVertices)
	points, inner, outer := appendCircleArcs(points,
		geom.Vec3{X: cx, Y: cy, Z: depth},
		d.CircleDiameter/2-LineWidth/2,
		d.CircleDiameter/2+LineWidth/2,
		n)
	fill, line := buildQuadrantTriangles(inner, outer)

	points, fill, line = replicateQuadrants(points, fill, line, cx, cy)
	for i := range points {
		points[i].X -= cx
		points[i].Y -= cy
	}

	f := &Field{
		Params:     p,
		Dimensions: d,
		Mesh: Mesh{
			Points:        points,
			FillTriangles: fill,
			LineTriangles: line,
		},
		Ground: GroundPlane{
			Length: d.ExtentLength(),
			Width:  d.ExtentWidth(),
		},
	}

	f.Goals = [2]GoalPlacement{
		f.placeGoal(geom.Vec3{X: d.FieldLength / 2}, geom.Identity()),
		f.placeGoal(geom.Vec3{X: -d.FieldLength / 2}, geom.Yaw(math.Pi)),
	}

	if p.TurfPhysics {
		f.CollisionPlane = &GroundPlane{
			Length: d.ExtentLength(),
			Width:  d.ExtentWidth(),
			Height: TurfThickness,
		}
	}
	return f
}

// placeGoal composes a goal's local pose with the field's own pose.
func (f *Field) placeGoal(local geom.Vec3, facing geom.AxisAngle) GoalPlacement {
	return GoalPlacement{
		Position: f.Params.Position.Add(f.Params.Orientation.Apply(local)),
		Rotation: facing.Compose(f.Params.Orientation),
		Size:     f.Params.Size,
	}
}

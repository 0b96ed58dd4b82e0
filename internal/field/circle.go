package field

import (
	"math"

	"github.com/soccerworks/pitchmesh/pkg/geom"
)

// arcSpan records where one tessellated arc lives in the point pool.
type arcSpan struct {
	start int // index of the first arc vertex
	count int // vertices in the arc
}

// arcVertexCount returns the number of vertices per quadrant arc for a
// requested full-circle tessellation. The +1 puts a vertex exactly on
// each sector boundary so mirrored quadrants share the seam vertex.
func arcVertexCount(circleVertices int) int {
	if circleVertices < 8 {
		circleVertices = 8
	}
	return int(math.Ceil(float64(circleVertices)/4)) + 1
}

// junctionIndex is the 1-based arc vertex at which the fill fans switch
// their interior reference point, where the circle boundary hands off
// between adjacent straight features.
func junctionIndex(n int) int {
	return int(math.Ceil(2 * float64(n) / 3))
}

// appendCircleArcs appends the inner and outer edge arcs of the center
// circle line for one quadrant. Both arcs start at atan((lineWidth/2)/r),
// which places the first vertex flush with the halfway line band instead
// of cutting a notch into it, and end exactly on the quadrant's mirror
// axis. Inner vertices are appended first, then outer, matching the
// index layout the triangle tables expect.
func appendCircleArcs(points []geom.Vec3, center geom.Vec3, innerR, outerR float64, n int) ([]geom.Vec3, arcSpan, arcSpan) {
	inner := arcSpan{start: len(points), count: n}
	points = appendArc(points, center, innerR, n)
	outer := arcSpan{start: len(points), count: n}
	points = appendArc(points, center, outerR, n)
	return points, inner, outer
}

func appendArc(points []geom.Vec3, center geom.Vec3, r float64, n int) []geom.Vec3 {
	a0 := math.Atan2(LineWidth/2, r)
	step := (math.Pi/2 - a0) / float64(n-1)
	for i := 0; i < n; i++ {
		if i == n-1 {
			// Seam vertex: land exactly on the mirror axis so the
			// reflected quadrant reproduces it bit for bit.
			points = append(points, geom.Vec3{X: center.X + r, Y: center.Y, Z: center.Z})
			break
		}
		a := a0 + float64(i)*step
		points = append(points, geom.Vec3{
			X: center.X + r*math.Sin(a),
			Y: center.Y + r*math.Cos(a),
			Z: center.Z,
		})
	}
	return points
}

// circleLineTriangles builds the circle's painted ring for one quadrant:
// one quad per arc step between the inner and outer arcs.
func circleLineTriangles(inner, outer arcSpan) []Triangle {
	quads := make([][4]int, 0, inner.count-1)
	for i := 0; i < inner.count-1; i++ {
		quads = append(quads, [4]int{
			inner.start + i,
			inner.start + i + 1,
			outer.start + i + 1,
			outer.start + i,
		})
	}
	return expandQuads(quads)
}

// circleFillTriangles attaches the circle to the surrounding turf. Both
// the disc interior and the midfield rectangle around the circle are
// non-convex against a single apex (the center-mark tick on the inside,
// the penalty area front on the outside), so each side is covered by two
// fans with a bridging junction triangle and one closing triangle.
func circleFillTriangles(inner, outer arcSpan) []Triangle {
	n := inner.count
	j := junctionIndex(n)
	tris := make([]Triangle, 0, 2*(n+1))

	in := func(i int) int { return inner.start + i - 1 } // 1-based arc vertex
	out := func(i int) int { return outer.start + i - 1 }

	// Disc interior, from the halfway line down to the long axis.
	for i := 1; i < j; i++ {
		tris = append(tris, Triangle{ptTickTopInner, in(i + 1), in(i)})
	}
	tris = append(tris, Triangle{ptTickTopInner, ptTickTopOuter, in(j)})
	for i := j; i < n; i++ {
		tris = append(tris, Triangle{ptTickTopOuter, in(i + 1), in(i)})
	}
	tris = append(tris, Triangle{ptTickBottomOuter, in(n), ptTickTopOuter})

	// Midfield rectangle outside the ring.
	for i := 1; i < j; i++ {
		tris = append(tris, Triangle{ptMidfieldTopLeft, out(i), out(i + 1)})
	}
	tris = append(tris, Triangle{ptMidfieldTopLeft, out(j), ptPenaltyFrontHigh})
	for i := j; i < n; i++ {
		tris = append(tris, Triangle{ptPenaltyFrontHigh, out(i), out(i + 1)})
	}
	tris = append(tris, Triangle{ptPenaltyFrontHigh, out(n), ptPenaltyFrontLow})

	return tris
}

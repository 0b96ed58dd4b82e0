package field

import (
	"testing"

	"github.com/soccerworks/pitchmesh/pkg/geom"
)

// triangleArea is the signed area of a triangle projected to the
// xy-plane; positive means counter-clockwise winding.
func triangleArea(points []geom.Vec3, tr Triangle) float64 {
	a, b, c := points[tr[0]], points[tr[1]], points[tr[2]]
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
}

func TestQuadrantPointCount(t *testing.T) {
	for _, class := range []SizeClass{SizeAdult, SizeKid} {
		pts := buildQuadrantPoints(Dimensions(class), 0)
		if len(pts) != quadrantPointCount {
			t.Errorf("%v: got %d points, want %d", class, len(pts), quadrantPointCount)
		}
	}
}

func TestQuadrantTablesInRange(t *testing.T) {
	for _, quads := range [][][4]int{quadLineQuads, quadFillQuads} {
		for _, q := range quads {
			for _, idx := range q {
				if idx < 0 || idx >= quadrantPointCount {
					t.Errorf("quad %v references point %d, outside [0, %d)", q, idx, quadrantPointCount)
				}
			}
		}
	}
}

func TestQuadrantPointsDistinct(t *testing.T) {
	pts := buildQuadrantPoints(Dimensions(SizeAdult), 0)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if pts[i] == pts[j] {
				t.Errorf("points %d and %d coincide at %v", i, j, pts[i])
			}
		}
	}
}

func TestQuadrantQuadsWindCounterClockwise(t *testing.T) {
	for _, class := range []SizeClass{SizeAdult, SizeKid} {
		pts := buildQuadrantPoints(Dimensions(class), 0)
		for _, tr := range expandQuads(quadLineQuads) {
			if a := triangleArea(pts, tr); a <= 0 {
				t.Errorf("%v: line triangle %v has area %v, want > 0", class, tr, a)
			}
		}
		for _, tr := range expandQuads(quadFillQuads) {
			if a := triangleArea(pts, tr); a <= 0 {
				t.Errorf("%v: fill triangle %v has area %v, want > 0", class, tr, a)
			}
		}
	}
}

func TestQuadrantLineAreas(t *testing.T) {
	d := Dimensions(SizeAdult)
	pts := buildQuadrantPoints(d, 0)

	quadArea := func(q [4]int) float64 {
		tris := expandQuads([][4]int{q})
		return triangleArea(pts, tris[0]) + triangleArea(pts, tris[1])
	}

	// Goal line band: line width by half field width.
	if got, want := quadArea(quadLineQuads[0]), LineWidth*d.FieldWidth/2; !within(got, want, 1e-12) {
		t.Errorf("goal line area = %v, want %v", got, want)
	}
	// Penalty area front line: line width by half penalty width plus the
	// half line-width overhang at the corner.
	if got, want := quadArea(quadLineQuads[4]), LineWidth*(d.PenaltyAreaWidth/2+LineWidth/2); !within(got, want, 1e-12) {
		t.Errorf("penalty front line area = %v, want %v", got, want)
	}
	// Penalty mark bar: full branch span by half line width.
	if got, want := quadArea(quadLineQuads[8]), 2*BranchLength*LineWidth/2; !within(got, want, 1e-12) {
		t.Errorf("penalty mark bar area = %v, want %v", got, want)
	}
}

func within(got, want, tol float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= tol
}

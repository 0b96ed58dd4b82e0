package field

import "github.com/soccerworks/pitchmesh/pkg/geom"

// quadrantTransform pairs a coordinate reflection with the vertex
// permutation that restores the original winding under it. A single-axis
// reflection flips orientation and needs an odd permutation; the double
// reflection preserves it and needs an even one.
type quadrantTransform struct {
	reflect func(p geom.Vec3, cx, cy float64) geom.Vec3
	permute func(t Triangle) Triangle
}

var quadrantTransforms = [4]quadrantTransform{
	{ // base quadrant, +x/+y
		reflect: func(p geom.Vec3, _, _ float64) geom.Vec3 { return p },
		permute: func(t Triangle) Triangle { return t },
	},
	{ // +x/-y
		reflect: func(p geom.Vec3, _, cy float64) geom.Vec3 {
			return geom.Vec3{X: p.X, Y: 2*cy - p.Y, Z: p.Z}
		},
		permute: func(t Triangle) Triangle { return Triangle{t[1], t[0], t[2]} },
	},
	{ // -x/-y
		reflect: func(p geom.Vec3, cx, cy float64) geom.Vec3 {
			return geom.Vec3{X: 2*cx - p.X, Y: 2*cy - p.Y, Z: p.Z}
		},
		permute: func(t Triangle) Triangle { return Triangle{t[1], t[2], t[0]} },
	},
	{ // -x/+y
		reflect: func(p geom.Vec3, cx, _ float64) geom.Vec3 {
			return geom.Vec3{X: 2*cx - p.X, Y: p.Y, Z: p.Z}
		},
		permute: func(t Triangle) Triangle { return Triangle{t[0], t[2], t[1]} },
	},
}

// replicateQuadrants expands the authored base quadrant into the full
// four-quadrant field. Quadrant k's points are the reflected base points
// appended at offset k*len(base), and its triangles are the base
// triangles re-indexed by that offset with the winding-correcting
// permutation applied.
func replicateQuadrants(base []geom.Vec3, fill, line []Triangle, cx, cy float64) ([]geom.Vec3, []Triangle, []Triangle) {
	n := len(base)
	points := make([]geom.Vec3, 0, 4*n)
	allFill := make([]Triangle, 0, 4*len(fill))
	allLine := make([]Triangle, 0, 4*len(line))

	for q, tf := range quadrantTransforms {
		offset := q * n
		for _, p := range base {
			points = append(points, tf.reflect(p, cx, cy))
		}
		for _, t := range fill {
			pt := tf.permute(t)
			allFill = append(allFill, Triangle{pt[0] + offset, pt[1] + offset, pt[2] + offset})
		}
		for _, t := range line {
			pt := tf.permute(t)
			allLine = append(allLine, Triangle{pt[0] + offset, pt[1] + offset, pt[2] + offset})
		}
	}
	return points, allFill, allLine
}

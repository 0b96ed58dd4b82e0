package field

import "github.com/soccerworks/pitchmesh/pkg/geom"

// The whole pitch is authored once as the quadrant on the +x/+y side of
// the center and then mirrored across both axes. Points are emitted in a
// fixed order; the triangle tables below index into that order, so the
// emission order is part of the contract.
//
// Coordinates are built with the origin at the outer border corner; the
// field center sits at (FieldLength/2+border, FieldWidth/2+border) until
// the final centering pass.

// quadrantPointCount is the number of straight-geometry points per
// quadrant, before the circle arcs are appended.
const quadrantPointCount = 45

// Landmark indices into the quadrant point list, used by the circle
// tessellation to attach its fill fans to the straight geometry.
const (
	ptTickBottomOuter  = 2  // (branch, 0), closes the inner fill fan
	ptTickTopInner     = 3  // (halfLine, halfLine), inner fan apex
	ptTickTopOuter     = 4  // (branch, halfLine), second inner fan apex
	ptMidfieldTopLeft  = 7  // (halfLine, penAreaHalfWidth+halfLine), outer fan apex
	ptPenaltyFrontLow  = 18 // (len/2-penDepth-halfLine, 0), closes the outer fan
	ptPenaltyFrontHigh = 21 // (len/2-penDepth-halfLine, penAreaHalfWidth+halfLine), second outer fan apex
)

// buildQuadrantPoints emits the 45 straight-geometry points of one
// quadrant: halfway line, center tick, boundary lines, border strips,
// penalty area, goal area and penalty mark cross. All coordinates are
// exact linear combinations of the dimension set, no trigonometry.
func buildQuadrantPoints(d DimensionSet, depth float64) []geom.Vec3 {
	h := d.FieldLength / 2
	w := d.FieldWidth / 2
	e := d.GoalAreaDepth
	f2 := d.GoalAreaWidth / 2
	j := d.PenaltyAreaDepth
	k2 := d.PenaltyAreaWidth / 2
	g := d.PenaltyMarkDistance
	b := d.BorderStripWidth
	lw := LineWidth
	t := lw / 2
	bl := BranchLength

	cx := h + b
	cy := w + b
	pt := func(u, v float64) geom.Vec3 {
		return geom.Vec3{X: cx + u, Y: cy + v, Z: depth}
	}

	return []geom.Vec3{
		// center cluster: halfway line and center-mark tick
		pt(0, 0),   // 0 field center
		pt(t, 0),   // 1 halfway line edge on the long axis
		pt(bl, 0),  // 2 tick tip on the long axis
		pt(t, t),   // 3 tick corner at the halfway line
		pt(bl, t),  // 4 tick outer corner
		pt(0, w-lw), // 5 halfway line at touchline, inner
		pt(t, w-lw), // 6
		pt(t, k2+t), // 7 halfway line edge level with the penalty area side
		pt(0, w),    // 8 halfway line at touchline, outer

		// goal line, touchline and border strip
		pt(h-lw, 0),  // 9 goal line inner edge on the long axis
		pt(h, 0),     // 10 goal line outer edge
		pt(h+b, 0),   // 11 border on the long axis
		pt(h-lw, w-lw), // 12 inner boundary corner
		pt(h-lw, w),  // 13
		pt(h, w),     // 14 outer boundary corner
		pt(h+b, w+b), // 15 border corner
		pt(h, w+b),   // 16
		pt(0, w+b),   // 17 border on the halfway plane

		// penalty area
		pt(h-j-t, 0),    // 18 front line outer edge on the long axis
		pt(h-j+t, 0),    // 19 front line inner edge
		pt(h-j+t, k2+t), // 20 front/side outer corner
		pt(h-j-t, k2+t), // 21
		pt(h-j+t, k2-t), // 22 front/side inner corner
		pt(h-lw, k2-t),  // 23 side line at the goal line, inner
		pt(h-lw, k2+t),  // 24 side line at the goal line, outer
		pt(h-j+t, f2+t), // 25 front line level with the goal area side
		pt(h-lw, f2+t),  // 26
		pt(h-lw, f2-t),  // 27

		// goal area
		pt(h-e-t, 0),    // 28 front line outer edge on the long axis
		pt(h-e+t, 0),    // 29 front line inner edge
		pt(h-e+t, f2+t), // 30 front/side outer corner
		pt(h-e-t, f2+t), // 31
		pt(h-e+t, f2-t), // 32 front/side inner corner

		// penalty mark cross
		pt(h-g-bl, 0),  // 33 bar tip toward midfield
		pt(h-g+bl, 0),  // 34 bar tip toward goal
		pt(h-g+bl, t),  // 35
		pt(h-g-bl, t),  // 36
		pt(h-g-t, t),   // 37 branch base toward midfield
		pt(h-g+t, t),   // 38 branch base toward goal
		pt(h-g+t, bl),  // 39 branch tip toward goal
		pt(h-g-t, bl),  // 40 branch tip toward midfield
		pt(h-g-bl, bl), // 41 fill corner beside the branch
		pt(h-g+bl, bl), // 42
		pt(h-g-bl, f2+t), // 43 fill corner level with the goal area side
		pt(h-g+bl, f2+t), // 44
	}
}

// quadLineQuads lists the straight line-layer rectangles as corner index
// quadruples, counter-clockwise in the plane. Each expands to two
// triangles.
var quadLineQuads = [][4]int{
	{9, 10, 14, 13},  // goal line
	{5, 12, 13, 8},   // touchline, up to the goal line band
	{28, 29, 30, 31}, // goal area front line
	{32, 27, 26, 30}, // goal area side line
	{18, 19, 20, 21}, // penalty area front line
	{22, 23, 24, 20}, // penalty area side line
	{0, 1, 6, 5},     // halfway line half-band
	{1, 2, 4, 3},     // center-mark tick
	{33, 34, 35, 36}, // penalty mark bar
	{37, 38, 39, 40}, // penalty mark branch
}

// quadFillQuads lists the straight turf rectangles between the line
// features, counter-clockwise. Together with the line quads and the
// circle construction they tile the quadrant exactly.
var quadFillQuads = [][4]int{
	{10, 11, 15, 16}, // border strip beyond the goal line
	{8, 14, 16, 17},  // border strip beyond the touchline
	{7, 24, 12, 6},   // midfield between penalty side line and touchline
	{29, 9, 27, 32},  // inside the goal area
	{25, 26, 23, 22}, // between goal area side and penalty side lines
	{19, 33, 43, 25}, // penalty area, midfield side of the mark
	{34, 28, 31, 44}, // penalty area, goal side of the mark
	{41, 42, 44, 43}, // above the mark branch
	{36, 37, 40, 41}, // beside the branch, midfield side
	{38, 35, 42, 39}, // beside the branch, goal side
}

// expandQuads turns corner quadruples into triangle pairs, preserving
// the counter-clockwise winding.
func expandQuads(quads [][4]int) []Triangle {
	tris := make([]Triangle, 0, 2*len(quads))
	for _, q := range quads {
		tris = append(tris,
			Triangle{q[0], q[1], q[2]},
			Triangle{q[0], q[2], q[3]},
		)
	}
	return tris
}

// buildQuadrantTriangles assembles the full fill and line tables for one
// quadrant: the straight tables above plus the circle ring and its four
// attachment fans.
func buildQuadrantTriangles(inner, outer arcSpan) (fill, line []Triangle) {
	fill = expandQuads(quadFillQuads)
	line = expandQuads(quadLineQuads)

	fill = append(fill, circleFillTriangles(inner, outer)...)
	line = append(line, circleLineTriangles(inner, outer)...)
	return fill, line
}

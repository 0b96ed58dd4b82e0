// Package field generates the triangulated mesh of a regulation soccer
// pitch: a turf surface layer and a painted-line layer over one shared
// point pool, plus goal placements and the ground collision extent.
package field

import "fmt"

// SizeClass selects one of the two supported pitch sizes.
type SizeClass int

const (
	SizeAdult SizeClass = iota
	SizeKid
)

// String returns the config-file spelling of the size class.
func (s SizeClass) String() string {
	switch s {
	case SizeKid:
		return "kid"
	default:
		return "adult"
	}
}

// ParseSizeClass converts a config string to a SizeClass.
// This is the only validation the field domain needs; the generator
// itself never fails.
func ParseSizeClass(s string) (SizeClass, error) {
	switch s {
	case "adult":
		return SizeAdult, nil
	case "kid":
		return SizeKid, nil
	default:
		return SizeAdult, fmt.Errorf("unknown size class %q (want \"adult\" or \"kid\")", s)
	}
}

// Universal marking constants, shared by both size classes.
const (
	// LineWidth is the painted line width in meters.
	LineWidth = 0.05
	// BranchLength is the arm length of the center and penalty mark crosses.
	BranchLength = 0.1
	// TurfThickness is the surface offset used when turf physics is enabled.
	TurfThickness = 0.01
	// DefaultCircleVertices is the default tessellation count for the full
	// center circle; each quadrant arc gets ceil(n/4)+1 vertices.
	DefaultCircleVertices = 64
)

// DimensionSet holds the named physical measurements of one pitch size,
// in meters. Every generated coordinate is a linear combination of these
// values and the marking constants above.
type DimensionSet struct {
	FieldLength         float64 // goal line to goal line
	FieldWidth          float64 // touchline to touchline
	GoalDepth           float64
	GoalWidth           float64
	GoalAreaDepth       float64
	GoalAreaWidth       float64
	PenaltyMarkDistance float64 // goal line to penalty mark
	CircleDiameter      float64
	BorderStripWidth    float64 // turf margin outside the boundary lines
	PenaltyAreaDepth    float64
	PenaltyAreaWidth    float64
}

var adultDimensions = DimensionSet{
	FieldLength:         28,
	FieldWidth:          18,
	GoalDepth:           1.2,
	GoalWidth:           5.2,
	GoalAreaDepth:       2,
	GoalAreaWidth:       8,
	PenaltyMarkDistance: 4.2,
	CircleDiameter:      6,
	BorderStripWidth:    2,
	PenaltyAreaDepth:    6,
	PenaltyAreaWidth:    12,
}

var kidDimensions = DimensionSet{
	FieldLength:         9,
	FieldWidth:          6,
	GoalDepth:           0.6,
	GoalWidth:           2.6,
	GoalAreaDepth:       1,
	GoalAreaWidth:       3,
	PenaltyMarkDistance: 1.5,
	CircleDiameter:      1.5,
	BorderStripWidth:    1,
	PenaltyAreaDepth:    2,
	PenaltyAreaWidth:    5,
}

// Dimensions resolves a size class to its measurement table. The enum is
// closed; unknown values (already rejected at config parse time) resolve
// to the adult table.
func Dimensions(class SizeClass) DimensionSet {
	if class == SizeKid {
		return kidDimensions
	}
	return adultDimensions
}

// ExtentLength returns the total ground length including border strips.
func (d DimensionSet) ExtentLength() float64 {
	return d.FieldLength + 2*d.BorderStripWidth
}

// ExtentWidth returns the total ground width including border strips.
func (d DimensionSet) ExtentWidth() float64 {
	return d.FieldWidth + 2*d.BorderStripWidth
}

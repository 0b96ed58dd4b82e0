package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/soccerworks/pitchmesh/internal/field"
	"github.com/soccerworks/pitchmesh/pkg/geom"
)

// WriteVRML writes the mesh as a VRML97 scene fragment: two
// IndexedFaceSet shapes (turf, lines) sharing one Coordinate node, plus
// a positioned placeholder Transform per goal. Index streams carry the
// usual -1 polygon terminators.
func WriteVRML(w io.Writer, f *field.Field) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#VRML V2.0 utf8")
	fmt.Fprintf(bw, "# %s pitch, ground extent %g x %g m\n",
		f.Params.Size, f.Ground.Length, f.Ground.Width)
	if f.CollisionPlane != nil {
		fmt.Fprintf(bw, "# collision plane at height %g m\n", f.CollisionPlane.Height)
	}

	fmt.Fprintln(bw, "Group {")
	fmt.Fprintln(bw, "  children [")

	writeShape(bw, "turf", "0.25 0.6 0.2", f.Mesh.Points, f.Mesh.FillIndexStream())
	writeShape(bw, "lines", "0.9 0.9 0.9", nil, f.Mesh.LineIndexStream())

	for _, g := range f.Goals {
		fmt.Fprintln(bw, "    Transform {")
		fmt.Fprintf(bw, "      translation %g %g %g\n", g.Position.X, g.Position.Y, g.Position.Z)
		fmt.Fprintf(bw, "      rotation %g %g %g %g\n",
			g.Rotation.Axis.X, g.Rotation.Axis.Y, g.Rotation.Axis.Z, g.Rotation.Angle)
		fmt.Fprintf(bw, "      # goal sub-assembly, size %s\n", g.Size)
		fmt.Fprintln(bw, "    }")
	}

	fmt.Fprintln(bw, "  ]")
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// writeShape emits one Shape node. The shape that carries points
// defines the shared Coordinate node; the other references it with USE.
func writeShape(w io.Writer, name, color string, points []geom.Vec3, coordIndex []int) {
	fmt.Fprintf(w, "    Shape { # %s\n", name)
	fmt.Fprintf(w, "      appearance Appearance { material Material { diffuseColor %s } }\n", color)
	fmt.Fprintln(w, "      geometry IndexedFaceSet {")
	fmt.Fprintln(w, "        ccw TRUE")
	fmt.Fprintln(w, "        solid FALSE")
	if points != nil {
		fmt.Fprintln(w, "        coord DEF PITCH_COORD Coordinate {")
		fmt.Fprintln(w, "          point [")
		for _, p := range points {
			fmt.Fprintf(w, "            %g %g %g,\n", p.X, p.Y, p.Z)
		}
		fmt.Fprintln(w, "          ]")
		fmt.Fprintln(w, "        }")
	} else {
		fmt.Fprintln(w, "        coord USE PITCH_COORD")
	}
	fmt.Fprintln(w, "        coordIndex [")
	for i := 0; i < len(coordIndex); i += 4 {
		fmt.Fprintf(w, "          %d, %d, %d, -1,\n", coordIndex[i], coordIndex[i+1], coordIndex[i+2])
	}
	fmt.Fprintln(w, "        ]")
	fmt.Fprintln(w, "      }")
	fmt.Fprintln(w, "    }")
}

// Package export writes generated pitch meshes in interchange formats
// consumed by external modeling and simulation tools.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/soccerworks/pitchmesh/internal/field"
)

// WriteOBJ writes the mesh as a Wavefront OBJ object with the turf and
// line layers in separate groups. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, f *field.Field) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o pitch_%s\n", f.Params.Size)
	for _, p := range f.Mesh.Points {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}

	fmt.Fprintln(bw, "g turf")
	writeOBJFaces(bw, f.Mesh.FillTriangles)
	fmt.Fprintln(bw, "g lines")
	writeOBJFaces(bw, f.Mesh.LineTriangles)

	return bw.Flush()
}

func writeOBJFaces(w io.Writer, tris []field.Triangle) {
	for _, t := range tris {
		fmt.Fprintf(w, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
}

package export

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/soccerworks/pitchmesh/internal/field"
)

func TestWriteOBJ(t *testing.T) {
	f := field.New(field.DefaultParams())

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, f); err != nil {
		t.Fatalf("WriteOBJ() error = %v", err)
	}

	var vertices, faces int
	groups := map[string]bool{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			vertices++
		case "g":
			groups[fields[1]] = true
		case "f":
			faces++
			for _, s := range fields[1:] {
				idx, err := strconv.Atoi(s)
				if err != nil {
					t.Fatalf("bad face index %q: %v", s, err)
				}
				if idx < 1 || idx > len(f.Mesh.Points) {
					t.Fatalf("face index %d outside [1, %d]", idx, len(f.Mesh.Points))
				}
			}
		}
	}

	if vertices != len(f.Mesh.Points) {
		t.Errorf("wrote %d vertices, want %d", vertices, len(f.Mesh.Points))
	}
	if want := len(f.Mesh.FillTriangles) + len(f.Mesh.LineTriangles); faces != want {
		t.Errorf("wrote %d faces, want %d", faces, want)
	}
	if !groups["turf"] || !groups["lines"] {
		t.Errorf("missing layer groups, got %v", groups)
	}
}

func TestWriteVRML(t *testing.T) {
	f := field.New(field.DefaultParams())

	var buf bytes.Buffer
	if err := WriteVRML(&buf, f); err != nil {
		t.Fatalf("WriteVRML() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "#VRML V2.0 utf8\n") {
		t.Error("missing VRML header")
	}
	if got := strings.Count(out, "IndexedFaceSet"); got != 2 {
		t.Errorf("found %d IndexedFaceSet nodes, want 2", got)
	}
	if strings.Count(out, "DEF PITCH_COORD") != 1 || strings.Count(out, "USE PITCH_COORD") != 1 {
		t.Error("coordinate pool not shared between shapes")
	}
	if got, want := strings.Count(out, ", -1,\n"), len(f.Mesh.FillTriangles)+len(f.Mesh.LineTriangles); got != want {
		t.Errorf("found %d terminated index rows, want %d", got, want)
	}
	if got := strings.Count(out, "Transform {"); got != 2 {
		t.Errorf("found %d goal transforms, want 2", got)
	}
	if !strings.Contains(out, "translation 14 0 0") || !strings.Contains(out, "translation -14 0 0") {
		t.Error("goal placements not at x = +-14")
	}
	if !strings.Contains(out, "collision plane at height 0.01") {
		t.Error("missing collision plane annotation")
	}
}

func TestWriteVRMLNoPhysics(t *testing.T) {
	p := field.DefaultParams()
	p.TurfPhysics = false
	f := field.New(p)

	var buf bytes.Buffer
	if err := WriteVRML(&buf, f); err != nil {
		t.Fatalf("WriteVRML() error = %v", err)
	}
	if strings.Contains(buf.String(), "collision plane") {
		t.Error("collision plane annotated with physics disabled")
	}
}

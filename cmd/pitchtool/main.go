// pitchtool is a CLI utility for generating and exporting soccer pitch
// meshes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soccerworks/pitchmesh/internal/config"
	"github.com/soccerworks/pitchmesh/internal/export"
	"github.com/soccerworks/pitchmesh/internal/field"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dims":
		cmdDims(args)
	case "obj":
		cmdExport(args, "obj")
	case "vrml", "wrl":
		cmdExport(args, "vrml")
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pitchtool - soccer pitch mesh generator

Usage:
  pitchtool <command> [options]

Commands:
  info [options]           Show mesh statistics for a generated pitch
  dims [options]           Print the dimension table for a size class
  obj [options] [output]   Export the mesh as Wavefront OBJ (default stdout)
  vrml [options] [output]  Export the mesh as a VRML97 scene (default stdout)
  config [output]          Write a starter config file (default config.yaml)

Options (info, obj, vrml):
  -size <adult|kid>        Field size class (default adult)
  -no-physics              Disable turf physics surfaces
  -circle-vertices <n>     Center circle tessellation count (default 64)

Examples:
  pitchtool info -size kid
  pitchtool dims -size adult
  pitchtool obj -size adult pitch.obj
  pitchtool vrml -no-physics pitch.wrl
  pitchtool config pitch-config.yaml`)
}

// fieldFlags registers the generation options shared by the commands
// and returns a closure producing the generated field.
func fieldFlags(fs *flag.FlagSet) func() *field.Field {
	size := fs.String("size", "adult", "Field size class (adult or kid)")
	noPhysics := fs.Bool("no-physics", false, "Disable turf physics surfaces")
	circle := fs.Int("circle-vertices", field.DefaultCircleVertices, "Center circle tessellation count")

	return func() *field.Field {
		class, err := field.ParseSizeClass(*size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		p := field.DefaultParams()
		p.Size = class
		p.TurfPhysics = !*noPhysics
		p.CircleVertices = *circle
		return field.New(p)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	generate := fieldFlags(fs)
	fs.Parse(args)
	f := generate()

	fmt.Printf("Size class:     %s\n", f.Params.Size)
	fmt.Printf("Ground extent:  %g x %g m\n", f.Ground.Length, f.Ground.Width)
	fmt.Printf("Points:         %d\n", len(f.Mesh.Points))
	fmt.Printf("Fill triangles: %d\n", len(f.Mesh.FillTriangles))
	fmt.Printf("Line triangles: %d\n", len(f.Mesh.LineTriangles))
	fmt.Printf("Turf physics:   %v\n", f.Params.TurfPhysics)
	if f.CollisionPlane != nil {
		fmt.Printf("Collision:      plane at height %g m\n", f.CollisionPlane.Height)
	}
	for i, g := range f.Goals {
		fmt.Printf("Goal %d:         (%g, %g, %g)\n", i, g.Position.X, g.Position.Y, g.Position.Z)
	}
}

func cmdDims(args []string) {
	fs := flag.NewFlagSet("dims", flag.ExitOnError)
	size := fs.String("size", "adult", "Field size class (adult or kid)")
	fs.Parse(args)

	class, err := field.ParseSizeClass(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	d := field.Dimensions(class)

	fmt.Printf("Dimension table: %s (meters)\n", class)
	fmt.Printf("  field length            %g\n", d.FieldLength)
	fmt.Printf("  field width             %g\n", d.FieldWidth)
	fmt.Printf("  goal depth              %g\n", d.GoalDepth)
	fmt.Printf("  goal width              %g\n", d.GoalWidth)
	fmt.Printf("  goal area depth         %g\n", d.GoalAreaDepth)
	fmt.Printf("  goal area width         %g\n", d.GoalAreaWidth)
	fmt.Printf("  penalty area depth      %g\n", d.PenaltyAreaDepth)
	fmt.Printf("  penalty area width      %g\n", d.PenaltyAreaWidth)
	fmt.Printf("  penalty mark distance   %g\n", d.PenaltyMarkDistance)
	fmt.Printf("  circle diameter         %g\n", d.CircleDiameter)
	fmt.Printf("  border strip width      %g\n", d.BorderStripWidth)
	fmt.Printf("  extent                  %g x %g\n", d.ExtentLength(), d.ExtentWidth())
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Parse(args)

	path := "config.yaml"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if err := config.Default().SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
}

func cmdExport(args []string, format string) {
	fs := flag.NewFlagSet(format, flag.ExitOnError)
	generate := fieldFlags(fs)
	fs.Parse(args)
	f := generate()

	out := os.Stdout
	if fs.NArg() > 0 {
		file, err := os.Create(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	var err error
	switch format {
	case "obj":
		err = export.WriteOBJ(out, f)
	case "vrml":
		err = export.WriteVRML(out, f)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if out != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d points, %d triangles)\n",
			fs.Arg(0), len(f.Mesh.Points),
			len(f.Mesh.FillTriangles)+len(f.Mesh.LineTriangles))
	}
}

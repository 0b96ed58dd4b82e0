package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/soccerworks/pitchmesh/internal/field"
	"github.com/soccerworks/pitchmesh/internal/logger"
)

// Run opens a window and renders the field until the user quits.
// Left-drag orbits the camera, the wheel zooms, Escape exits.
func Run(winCfg WindowConfig, f *field.Field) error {
	win, err := NewWindow(winCfg)
	if err != nil {
		return err
	}
	defer win.Close()

	renderer, err := NewRenderer(f)
	if err != nil {
		return err
	}
	defer renderer.Close()

	camera := NewCamera(f.Ground.Length, f.Ground.Width)
	camera.Target = [3]float32{
		float32(f.Params.Position.X),
		float32(f.Params.Position.Y),
		float32(f.Params.Position.Z),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.08, 0.1, 0.14, 1)

	logger.Info("viewer running",
		zap.String("size", f.Params.Size.String()),
		zap.Int("points", len(f.Mesh.Points)),
		zap.Int("fill_triangles", len(f.Mesh.FillTriangles)),
		zap.Int("line_triangles", len(f.Mesh.LineTriangles)),
	)

	dragging := false
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					camera.Orbit(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				camera.Zoom(float32(e.Y))
			}
		}

		width, height := win.GetSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		renderer.Draw(camera.ProjectionMatrix(width, height), camera.ViewMatrix())

		win.SwapBuffers()
	}
}

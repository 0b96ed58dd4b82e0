package viewer

import (
	"math"

	"github.com/soccerworks/pitchmesh/pkg/geom"
)

// Camera orbits a target point at a distance, controlled by yaw (around
// the z-up axis) and pitch (elevation above the pitch plane).
type Camera struct {
	Target   [3]float32
	Distance float32
	Yaw      float32 // radians around +z
	Pitch    float32 // radians above the xy-plane

	minDistance float32
	maxDistance float32
}

// NewCamera returns a camera framing a pitch of the given extent.
func NewCamera(extentLength, extentWidth float64) *Camera {
	d := float32(math.Max(extentLength, extentWidth)) * 1.2
	return &Camera{
		Distance:    d,
		Yaw:         -math.Pi / 2,
		Pitch:       0.9,
		minDistance: d * 0.1,
		maxDistance: d * 4,
	}
}

// Orbit adjusts yaw and pitch by mouse deltas.
func (c *Camera) Orbit(dx, dy float32) {
	c.Yaw += dx * 0.01
	c.Pitch += dy * 0.01
	const maxPitch = math.Pi/2 - 0.01
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < 0.05 {
		c.Pitch = 0.05
	}
}

// Zoom moves the camera along its view ray.
func (c *Camera) Zoom(delta float32) {
	c.Distance *= 1 - delta*0.1
	if c.Distance < c.minDistance {
		c.Distance = c.minDistance
	}
	if c.Distance > c.maxDistance {
		c.Distance = c.maxDistance
	}
}

// Eye returns the camera position in world coordinates (z up).
func (c *Camera) Eye() [3]float32 {
	cosP := float32(math.Cos(float64(c.Pitch)))
	return [3]float32{
		c.Target[0] + c.Distance*cosP*float32(math.Cos(float64(c.Yaw))),
		c.Target[1] + c.Distance*cosP*float32(math.Sin(float64(c.Yaw))),
		c.Target[2] + c.Distance*float32(math.Sin(float64(c.Pitch))),
	}
}

// ViewMatrix returns the view matrix for the current orbit state.
func (c *Camera) ViewMatrix() geom.Mat4 {
	return geom.LookAt(c.Eye(), c.Target, [3]float32{0, 0, 1})
}

// ProjectionMatrix returns the perspective projection for the given
// viewport size.
func (c *Camera) ProjectionMatrix(width, height int) geom.Mat4 {
	aspect := float32(width) / float32(height)
	return geom.Perspective(math.Pi/4, aspect, 0.1, c.maxDistance*2)
}

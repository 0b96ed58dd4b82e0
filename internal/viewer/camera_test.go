package viewer

import (
	"math"
	"testing"
)

func TestNewCameraFramesExtent(t *testing.T) {
	c := NewCamera(32, 22)
	if c.Distance <= 32 {
		t.Errorf("camera distance %v does not back off the long extent", c.Distance)
	}
	eye := c.Eye()
	if eye[2] <= 0 {
		t.Errorf("camera eye z = %v, want above the pitch plane", eye[2])
	}
}

func TestCameraOrbitClampsPitch(t *testing.T) {
	c := NewCamera(32, 22)
	c.Orbit(0, 1e6)
	if c.Pitch >= math.Pi/2 {
		t.Errorf("pitch %v reached the pole", c.Pitch)
	}
	c.Orbit(0, -1e6)
	if c.Pitch <= 0 {
		t.Errorf("pitch %v went below the pitch plane", c.Pitch)
	}
}

func TestCameraZoomClamps(t *testing.T) {
	c := NewCamera(32, 22)
	for i := 0; i < 1000; i++ {
		c.Zoom(1)
	}
	if c.Distance < c.minDistance {
		t.Errorf("distance %v under the minimum %v", c.Distance, c.minDistance)
	}
	for i := 0; i < 1000; i++ {
		c.Zoom(-1)
	}
	if c.Distance > c.maxDistance {
		t.Errorf("distance %v over the maximum %v", c.Distance, c.maxDistance)
	}
}

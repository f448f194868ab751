package coordinator

import (
	"fmt"

	"StripedMandelbrot/mandelbrot"
)

const defaultZoomStep = 1.5

// TransitionSettings is a run of frames, each zoomed further into a point than the one before it
type TransitionSettings struct {
	Frames         uint
	PointReal      float64
	PointImaginary float64
	ZoomStep       float64
}

func (ts *TransitionSettings) Verify() error {
	if ts.Frames == 0 {
		ts.Frames = 1
	}
	if ts.ZoomStep <= 0 {
		ts.ZoomStep = defaultZoomStep
		if ts.Frames > 1 {
			return fmt.Errorf("zoom step must be positive, using %g", defaultZoomStep)
		}
	}
	return nil
}

// Viewports returns the viewport of every frame. The first frame is start itself.
func (ts *TransitionSettings) Viewports(start mandelbrot.Viewport) []mandelbrot.Viewport {
	viewports := make([]mandelbrot.Viewport, 0, ts.Frames)
	current := start
	for frame := uint(0); frame < ts.Frames; frame++ {
		if frame > 0 {
			current = current.Zoom(ts.PointReal, ts.PointImaginary, ts.ZoomStep)
		}
		viewports = append(viewports, current)
	}
	return viewports
}

// Frames chains every transition, each one starting where the previous one ended
func (s *Settings) Frames() []mandelbrot.Viewport {
	var frames []mandelbrot.Viewport
	current := s.Viewport
	for i := range s.TransitionSettings {
		viewports := s.TransitionSettings[i].Viewports(current)
		if len(frames) > 0 && len(viewports) > 0 {
			// The first frame of a transition repeats the last frame of the previous one
			viewports = viewports[1:]
		}
		frames = append(frames, viewports...)
		if len(frames) > 0 {
			current = frames[len(frames)-1]
		}
	}
	return frames
}

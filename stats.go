package render3d

// Stats reports the performance counters published after each frame.
type Stats struct {
	// FPS is the number of frames that completed during the trailing
	// one second of render time, not an instantaneous rate.
	FPS int
	// Triangles is the triangle count submitted this frame.
	Triangles int
	// DrawCalls is the number of draw calls issued this frame.
	DrawCalls int
}

// fpsWindow counts frames over a rolling one-second window of frame
// timestamps, in milliseconds.
type fpsWindow struct {
	times []float64
}

// tick records a frame at the given timestamp and returns the number of
// frames inside the window ending at it.
func (w *fpsWindow) tick(timeMs float64) int {
	cutoff := timeMs - 1000
	keep := 0
	for keep < len(w.times) && w.times[keep] <= cutoff {
		keep++
	}
	if keep > 0 {
		w.times = append(w.times[:0], w.times[keep:]...)
	}
	w.times = append(w.times, timeMs)
	return len(w.times)
}

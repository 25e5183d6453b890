package render3d

import "github.com/chewxy/math32"

// Animate returns the effective transform for an object at the given
// absolute time in milliseconds. The base transform is never mutated; a
// nil animation or an unknown type returns base unchanged.
//
// All three animations are functions of absolute time rather than frame
// deltas, so replaying a timestamp reproduces the exact pose.
func Animate(base Transform, anim *Animation, timeMs float64) Transform {
	if anim == nil {
		return base
	}
	phase := float32(timeMs * float64(anim.Speed) * 0.001)
	t := base
	switch anim.Type {
	case AnimationRotate:
		t.Rotation.Y += phase
	case AnimationFloat:
		t.Position.Y += math32.Sin(phase) * anim.Amplitude
	case AnimationPulse:
		s := 1 + math32.Sin(phase)*anim.Amplitude
		t.Scale = t.Scale.Scale(s)
	}
	return t
}

package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// LeanSign returns 1 for a lean to the right and -1 otherwise, upright included.
func LeanSign(angle float64) float64 {
	if angle > 0 {
		return 1
	}
	return -1
}

// Damp scales v by factor once per reference frame over dt frames.
func Damp(v, factor, dt float64) float64 {
	return v * math.Pow(factor, dt)
}

// HeadPosition returns the point dist away from (x, y) along the lean.
// An upright cat (angle 0) has its head straight above the wheel.
func HeadPosition(x, y, angle, dist float64) (hx, hy float64) {
	return x + dist*math.Cos(angle-math.Pi/2), y + dist*math.Sin(angle-math.Pi/2)
}

// DeflectSide returns which way an impact at (px, py) spins a head at (hx, hy).
func DeflectSide(hx, hy, px, py float64) float64 {
	if math.Atan2(hy-py, hx-px)-math.Pi/2 < 0 {
		return 1
	}
	return -1
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

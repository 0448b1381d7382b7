package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

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

// RectsOverlap reports whether two rectangles share interior area.
// Touching edges do not count.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// CircleOverlapsRect reports whether the circle at (cx, cy) touches the
// rectangle, edges included.
func CircleOverlapsRect(cx, cy, r, x, y, w, h float64) bool {
	nearestX := math.Max(x, math.Min(cx, x+w))
	nearestY := math.Max(y, math.Min(cy, y+h))
	dx, dy := cx-nearestX, cy-nearestY
	return dx*dx+dy*dy <= r*r
}

// PixelsToWorld converts a per-frame pixel speed to world units per second.
func PixelsToWorld(speed float64, tps int, pixelsPerUnit float64) float64 {
	return speed * float64(tps) / pixelsPerUnit
}

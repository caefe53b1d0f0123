package gamemath

import "math"

// Toward returns the velocity of length speed pointing from (x, y) to
// (tx, ty). It is zero when both points coincide.
func Toward(x, y, tx, ty, speed float64) (velX, velY float64) {
	dirX := tx - x
	dirY := ty - y
	dist := math.Hypot(dirX, dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Polar returns the velocity of length speed at angle radians.
func Polar(angle, speed float64) (velX, velY float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

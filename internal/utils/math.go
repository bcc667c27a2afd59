package utils

import "math"

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MoveTowards сдвигает точку (x, y) к цели на step. Если step покрывает
// расстояние, возвращается сама цель и arrived = true.
func MoveTowards(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist <= step {
		return tx, ty, true
	}
	return x + dx/dist*step, y + dy/dist*step, false
}

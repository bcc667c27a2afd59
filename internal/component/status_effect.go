// internal/component/status_effect.go
package component

// SlowEffect — временный множитель скорости врага.
type SlowEffect struct {
	Timer      float64 // оставшееся время, секунды
	SlowFactor float64 // 0.5 — вдвое медленнее
}

// Advance отсчитывает dt и сообщает, истёк ли эффект.
func (e *SlowEffect) Advance(dt float64) (expired bool) {
	e.Timer -= dt
	return e.Timer <= 0
}

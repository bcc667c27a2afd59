package component

import "go-maze-defense/internal/types"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Ratio returns the remaining health as a fraction of the maximum.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage       int
	Range        float64        // Радиус действия в мировых единицах
	FireInterval float64        // Секунд между выстрелами
	LastFired    float64        // Время последнего выстрела
	HasFired     bool           // Стреляла ли башня хоть раз
	TargetID     types.EntityID // Текущая цель (0 — нет цели), слабая ссылка
}

// Ready reports whether the tower may fire at time now.
func (c *Combat) Ready(now float64) bool {
	return !c.HasFired || now-c.LastFired >= c.FireInterval
}

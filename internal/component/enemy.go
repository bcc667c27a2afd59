package component

import "go-maze-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind       defs.EnemyKind
	Reward     int  // Деньги за убийство
	Alive      bool // false после смерти или выхода
	ReachedEnd bool // Достиг ли враг конца пути
	Reported   bool // событие о смерти/выходе уже отправлено
}

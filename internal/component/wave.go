// internal/component/wave.go
package component

import "go-maze-defense/internal/defs"

// Wave — состояние текущей волны
type Wave struct {
	Number        int              // Номер волны, начиная с 1
	Queue         []defs.EnemyKind // Очередь появления (перемешана)
	SpawnInterval float64          // Интервал между спавнами (в секундах)
	LastSpawn     float64          // Время последнего спавна
	HasSpawned    bool             // Был ли уже хоть один спавн в этой волне
	Spawning      bool             // Очередь ещё не пуста
	InProgress    bool             // Волна идёт (спавн или живые враги)
}

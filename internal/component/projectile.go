// internal/component/projectile.go
package component

import (
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/types"
)

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	TargetID types.EntityID // слабая ссылка на врага
	SourceID types.EntityID
	Speed    float64
	Damage   int
	Kind     defs.TowerKind // косметика, на урон не влияет
}

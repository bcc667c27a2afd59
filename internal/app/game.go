// internal/app/game.go
package app

import (
	"fmt"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/economy"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/log"
	"go-maze-defense/internal/system"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/gridmap"

	"github.com/google/uuid"
)

// Options configures a game session.
type Options struct {
	Width         int
	Height        int
	Start         gridmap.Coord
	End           gridmap.Coord
	Layout        gridmap.Layout
	Library       *defs.Library
	StartingMoney int
	StartingLives int
	Decorations   int   // сколько кандидатов в декорации попробовать
	Seed          int64 // 0 — сид от времени
	Logger        *log.Logger
}

// DefaultOptions returns the standard 30x20 board with anchors on the middle row.
func DefaultOptions() Options {
	start, end := gridmap.DefaultAnchors(config.GridWidth, config.GridHeight)
	return Options{
		Width:  config.GridWidth,
		Height: config.GridHeight,
		Start:  start,
		End:    end,
		Layout: gridmap.Layout{
			TileSize: config.TileSize,
			OffsetX:  config.GridOffsetX,
			OffsetY:  config.GridOffsetY,
		},
		Library:       defs.DefaultLibrary(),
		StartingMoney: config.StartingMoney,
		StartingLives: config.StartingLives,
		Decorations:   config.DecorationCount,
	}
}

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem

	opts      Options
	grid      *gridmap.Grid
	economy   *economy.Economy
	recorder  *event.Recorder
	logger    *log.Logger
	sessionID string
	gameTime  float64
}

// NewGame initializes a new game instance.
func NewGame(opts Options) (*Game, error) {
	if opts.Library == nil {
		opts.Library = defs.DefaultLibrary()
	}
	if err := opts.Library.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	g := &Game{opts: opts, logger: opts.Logger}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset начинает новую партию: новая сетка, ECS, экономика и волны.
// Слушатели, подписанные на старый диспетчер, не переносятся.
func (g *Game) Reset() error {
	rng := utils.NewPRNGService(g.opts.Seed)
	candidates := decorationCandidates(rng, g.opts.Width, g.opts.Height, g.opts.Start, g.opts.End, g.opts.Decorations)
	grid, err := gridmap.NewGrid(gridmap.GridOptions{
		Width:       g.opts.Width,
		Height:      g.opts.Height,
		Start:       g.opts.Start,
		End:         g.opts.End,
		Layout:      g.opts.Layout,
		Decorations: candidates,
	})
	if err != nil {
		return fmt.Errorf("app: new grid: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	// Рекордер подписан первым: события пишутся в порядке отправки
	eventDispatcher.SubscribeAll(recorder)

	g.ECS = ecs
	g.EventDispatcher = eventDispatcher
	g.Rng = rng
	g.grid = grid
	g.recorder = recorder
	g.economy = economy.New(g.opts.StartingMoney, g.opts.StartingLives)
	g.gameTime = 0
	g.sessionID = uuid.New().String()

	g.MovementSystem = system.NewMovementSystem(ecs, grid.Layout())
	g.WaveSystem = system.NewWaveSystem(ecs, grid, g.opts.Library, rng, eventDispatcher, g.logger)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.EconomySystem = system.NewEconomySystem(g.economy, eventDispatcher, g.logger)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher, g.logger)

	g.logger.Infof("session %s: %dx%d grid, seed %d, %d decorations, path %d cells",
		g.sessionID, grid.Width(), grid.Height(), rng.Seed(), len(grid.Decorations()), grid.PathLength())
	return nil
}

// Tick продвигает симуляцию на dt секунд; now — игровое время конца тика.
// Возвращает все события с прошлого Tick, включая события команд, в порядке отправки.
func (g *Game) Tick(dt, now float64) []event.Event {
	g.ECS.GameTime = now
	if g.ECS.GameState.Finished() {
		return g.recorder.Drain()
	}

	g.WaveSystem.Update(now)
	g.StatusEffectSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.cleanupDestroyedEntities()
	if g.ECS.GameState.Finished() {
		return g.recorder.Drain()
	}

	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update(dt)
	g.cleanupDestroyedEntities()
	g.WaveSystem.CheckComplete()
	return g.recorder.Drain()
}

// Update clamps dt, advances the game clock and runs one Tick.
func (g *Game) Update(deltaTime float64) []event.Event {
	dt := deltaTime
	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.gameTime += dt
	return g.Tick(dt, g.gameTime)
}

// StartWave запускает следующую волну.
func (g *Game) StartWave() error {
	if g.ECS.GameState.Finished() {
		g.logger.Warnf("start wave rejected: %v", ErrGameOver)
		return ErrGameOver
	}
	if err := g.WaveSystem.CanStart(); err != nil {
		g.logger.Warnf("start wave rejected: %v", err)
		return err
	}
	return g.WaveSystem.StartWave()
}

// cleanupDestroyedEntities сообщает о мёртвых и дошедших врагах и удаляет их.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		if enemy.Alive || enemy.Reported {
			continue
		}
		enemy.Reported = true

		data := event.EnemyData{ID: id, Kind: enemy.Kind, Reward: enemy.Reward}
		if pos, ok := g.ECS.Positions[id]; ok {
			data.X, data.Y = pos.X, pos.Y
		}
		if enemy.ReachedEnd {
			g.logger.Debugf("%s #%d reached the exit", enemy.Kind, id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: data})
		} else {
			g.logger.Debugf("%s #%d killed", enemy.Kind, id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
		}
		g.ECS.RemoveEntity(id)
	}
}

// ClearProjectiles удаляет все снаряды. Вызывается StateSystem при конце игры.
func (g *Game) ClearProjectiles() {
	g.ProjectileSystem.Clear()
}

func (g *Game) Grid() *gridmap.Grid {
	return g.grid
}

func (g *Game) Path() []gridmap.Coord {
	return g.grid.Path()
}

func (g *Game) Obstacles() gridmap.ObstacleSet {
	return g.grid.Obstacles()
}

func (g *Game) CellAt(c gridmap.Coord) (gridmap.Cell, error) {
	return g.grid.Cell(c)
}

func (g *Game) Economy() economy.Snapshot {
	return g.economy.Snapshot()
}

func (g *Game) WaveStatus() system.WaveStatus {
	return g.WaveSystem.Status()
}

func (g *Game) Phase() component.GameState {
	return g.ECS.GameState
}

// Clock returns the game time of the last Update.
func (g *Game) Clock() float64 {
	return g.gameTime
}

func (g *Game) SessionID() string {
	return g.sessionID
}

func (g *Game) Library() *defs.Library {
	return g.opts.Library
}

func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

// internal/system/wave.go
package system

import (
	"errors"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/log"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/gridmap"
)

var (
	// ErrNoMoreWaves is returned by StartWave once every wave definition has been used.
	ErrNoMoreWaves = errors.New("no more waves")
	// ErrWaveInProgress is returned by StartWave while the current wave is still running.
	ErrWaveInProgress = errors.New("wave already in progress")
)

// WavePhase — фаза менеджера волн
type WavePhase int

const (
	WaveIdle     WavePhase = iota
	WaveSpawning           // очередь не пуста
	WaveDraining           // очередь пуста, враги ещё живы
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	default:
		return "idle"
	}
}

// WaveStatus — срез состояния волн для интерфейса.
type WaveStatus struct {
	Current    int       `json:"current"`
	Total      int       `json:"total"`
	Phase      WavePhase `json:"-"`
	PhaseName  string    `json:"phase"`
	InProgress bool      `json:"in_progress"`
	Spawning   bool      `json:"spawning"`
	Remaining  int       `json:"remaining"`
}

// WaveSystem превращает определение волны в расписание спавна.
type WaveSystem struct {
	ecs             *entity.ECS
	grid            *gridmap.Grid
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	next            int // индекс следующего определения волны
}

func NewWaveSystem(ecs *entity.ECS, grid *gridmap.Grid, library *defs.Library, rng *utils.PRNGService,
	eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		grid:            grid,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// StartWave собирает и перемешивает очередь следующей волны.
// При отказе состояние не меняется.
func (s *WaveSystem) StartWave() error {
	if err := s.CanStart(); err != nil {
		return err
	}

	waveDef := s.library.Waves[s.next]
	queue := waveDef.Queue()
	utils.Shuffle(s.rng, queue)

	s.next++
	s.ecs.Wave = &component.Wave{
		Number:        s.next,
		Queue:         queue,
		SpawnInterval: waveDef.SpawnInterval.Seconds(),
		Spawning:      len(queue) > 0,
		InProgress:    true,
	}
	s.logger.Infof("wave %d/%d started: %d walkers, %d runners", s.next, len(s.library.Waves), waveDef.Walkers, waveDef.Runners)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{
		Number:  s.next,
		Total:   len(s.library.Waves),
		Enemies: len(queue),
	}})
	return nil
}

// Update выпускает не больше одного врага за тик. Первый враг волны
// появляется сразу, следующие, когда с прошлого спавна прошёл интервал.
func (s *WaveSystem) Update(now float64) {
	wave := s.ecs.Wave
	if wave == nil || !wave.Spawning {
		return
	}
	if wave.HasSpawned && now-wave.LastSpawn < wave.SpawnInterval {
		return
	}

	kind := wave.Queue[0]
	wave.Queue = wave.Queue[1:]
	s.spawnEnemy(kind)
	wave.LastSpawn = now
	wave.HasSpawned = true
	if len(wave.Queue) == 0 {
		wave.Spawning = false
	}
}

func (s *WaveSystem) spawnEnemy(kind defs.EnemyKind) {
	def, ok := s.library.Enemy(kind)
	if !ok {
		s.logger.Errorf("enemy definition not found for kind %q", kind)
		return
	}
	// Враг получает копию текущего пути; последующие перестройки его не затрагивают
	path := s.grid.Path()
	if len(path) == 0 {
		s.logger.Errorf("no path to spawn %q on", kind)
		return
	}

	layout := s.grid.Layout()
	id := s.ecs.NewEntity()
	x, y := layout.ToWorld(path[0])
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: layout.TilesToWorld(def.Speed)}
	s.ecs.Paths[id] = &component.Path{Cells: path, CurrentIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:       def.Visuals.Color,
		Radius:      float32(layout.TileSize * def.Visuals.RadiusFactor),
		StrokeWidth: float32(def.Visuals.StrokeWidth),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Kind:   kind,
		Reward: def.Reward,
		Alive:  true,
	}
	s.logger.Debugf("spawned %s #%d, path of %d cells", kind, id, len(path))
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		ID:     id,
		Kind:   kind,
		Reward: def.Reward,
		X:      x,
		Y:      y,
	}})
}

// CheckComplete завершает волну, когда спавн окончен и врагов не осталось.
// После последней волны дополнительно отправляется AllWavesComplete.
func (s *WaveSystem) CheckComplete() {
	wave := s.ecs.Wave
	if wave == nil || !wave.InProgress || wave.Spawning || len(s.ecs.Enemies) > 0 {
		return
	}
	wave.InProgress = false
	s.logger.Infof("wave %d complete", wave.Number)
	data := event.WaveData{Number: wave.Number, Total: len(s.library.Waves)}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveComplete, Data: data})
	if s.Exhausted() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesComplete, Data: data})
	}
}

// CanStart reports why the next wave cannot start, or nil if it can.
func (s *WaveSystem) CanStart() error {
	if w := s.ecs.Wave; w != nil && w.InProgress {
		return ErrWaveInProgress
	}
	if s.Exhausted() {
		return ErrNoMoreWaves
	}
	return nil
}

// Exhausted reports whether every wave definition has been started.
func (s *WaveSystem) Exhausted() bool {
	return s.next >= len(s.library.Waves)
}

func (s *WaveSystem) Phase() WavePhase {
	wave := s.ecs.Wave
	switch {
	case wave == nil || !wave.InProgress:
		return WaveIdle
	case wave.Spawning:
		return WaveSpawning
	default:
		return WaveDraining
	}
}

func (s *WaveSystem) Status() WaveStatus {
	st := WaveStatus{Current: s.next, Total: len(s.library.Waves), Phase: s.Phase()}
	st.PhaseName = st.Phase.String()
	if wave := s.ecs.Wave; wave != nil {
		st.InProgress = wave.InProgress
		st.Spawning = wave.Spawning
		st.Remaining = len(wave.Queue)
	}
	return st
}

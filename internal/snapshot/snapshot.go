// Package snapshot captures the game's query surface as JSON-friendly data
// for the debug server and on-disk dumps.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-maze-defense/internal/app"
	"go-maze-defense/internal/economy"
	"go-maze-defense/internal/system"
	"go-maze-defense/pkg/gridmap"
)

const (
	// RecentEvents is how many log entries a snapshot carries.
	RecentEvents = 50
	pathHead     = 10
)

type Grid struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Start       gridmap.Coord   `json:"start"`
	End         gridmap.Coord   `json:"end"`
	TowerCount  int             `json:"tower_count"`
	Obstacles   []gridmap.Coord `json:"obstacles"`
	Decorations []gridmap.Coord `json:"decorations"`
}

// Path summarises the current route; long routes keep only the head and tail.
type Path struct {
	Length     int             `json:"length"`
	MazeFactor float64         `json:"maze_factor"`
	Head       []gridmap.Coord `json:"head"`
	Tail       []gridmap.Coord `json:"tail,omitempty"`
}

type Snapshot struct {
	SessionID    string               `json:"session_id"`
	Seed         int64                `json:"seed"`
	Timestamp    time.Time            `json:"timestamp"`
	GameTime     float64              `json:"game_time"`
	Phase        string               `json:"phase"`
	Grid         Grid                 `json:"grid"`
	Path         Path                 `json:"path"`
	Economy      economy.Snapshot     `json:"economy"`
	Wave         system.WaveStatus    `json:"wave"`
	Towers       []app.TowerView      `json:"towers"`
	Enemies      []app.EnemyView      `json:"enemies"`
	Projectiles  []app.ProjectileView `json:"projectiles"`
	RecentEvents []Entry              `json:"recent_events"`
}

// Capture reads the game. Call it from the goroutine that ticks the game.
func Capture(g *app.Game, log *EventLog) Snapshot {
	grid := g.Grid()
	s := Snapshot{
		SessionID: g.SessionID(),
		Seed:      g.Seed(),
		Timestamp: time.Now(),
		GameTime:  g.ECS.GameTime,
		Phase:     g.Phase().String(),
		Grid: Grid{
			Width:       grid.Width(),
			Height:      grid.Height(),
			Start:       grid.Start(),
			End:         grid.End(),
			TowerCount:  len(grid.Towers()),
			Obstacles:   grid.Obstacles().Sorted(),
			Decorations: grid.Decorations(),
		},
		Path:        summarisePath(grid.Path(), grid.MazeFactor()),
		Economy:     g.Economy(),
		Wave:        g.WaveStatus(),
		Towers:      g.Towers(),
		Enemies:     g.Enemies(),
		Projectiles: g.Projectiles(),
	}
	if log != nil {
		s.RecentEvents = log.Last(RecentEvents)
	}
	return s
}

func summarisePath(path []gridmap.Coord, mazeFactor float64) Path {
	p := Path{Length: len(path), MazeFactor: mazeFactor}
	if len(path) <= 2*pathHead {
		p.Head = path
		return p
	}
	p.Head = path[:pathHead]
	p.Tail = path[len(path)-pathHead:]
	return p
}

// Save writes the snapshot as indented JSON into dir and returns the file path.
func Save(s Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: create dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("snapshot: marshal: %w", err)
	}
	name := fmt.Sprintf("snapshot_%s.json", s.Timestamp.Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("snapshot: write: %w", err)
	}
	return path, nil
}

// Store holds the latest published snapshot for other goroutines.
type Store struct {
	mu      sync.RWMutex
	latest  Snapshot
	ok      bool
	version uint64
	notify  chan struct{}
}

func NewStore() *Store {
	return &Store{notify: make(chan struct{})}
}

// Publish replaces the latest snapshot and wakes every waiter.
func (s *Store) Publish(snap Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.ok = true
	s.version++
	close(s.notify)
	s.notify = make(chan struct{})
	s.mu.Unlock()
}

// Latest returns the newest snapshot and whether one was published yet.
func (s *Store) Latest() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.ok
}

// Changed returns a channel closed on the next Publish.
func (s *Store) Changed() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notify
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

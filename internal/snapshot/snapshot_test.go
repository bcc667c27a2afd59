package snapshot

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"go-maze-defense/internal/app"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/event"
	"go-maze-defense/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvents(n int) []event.Event {
	out := make([]event.Event, n)
	for i := range out {
		out[i] = event.Event{Type: event.TowerFired}
	}
	return out
}

func TestEventLog_Bounded(t *testing.T) {
	log := NewEventLog(3)
	log.Record(1, makeEvents(2))
	log.Record(2, makeEvents(3))

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, uint64(5), log.Seq())
	entries := log.Last(10)
	require.Len(t, entries, 3)
	assert.Equal(t, uint64(3), entries[0].Seq)
	assert.Equal(t, uint64(5), entries[2].Seq)
	assert.Equal(t, 2.0, entries[2].GameTime)
}

func TestEventLog_Since(t *testing.T) {
	log := NewEventLog(10)
	log.Record(0, makeEvents(4))

	since := log.Since(2)
	require.Len(t, since, 2)
	assert.Equal(t, uint64(3), since[0].Seq)
	assert.Empty(t, log.Since(4))

	log.Reset()
	assert.Zero(t, log.Len())
	log.Record(0, makeEvents(1))
	assert.Equal(t, uint64(5), log.Last(1)[0].Seq)
}

func newGame(t *testing.T) *app.Game {
	t.Helper()
	opts := app.DefaultOptions()
	opts.Seed = 3
	g, err := app.NewGame(opts)
	require.NoError(t, err)
	return g
}

func TestCapture(t *testing.T) {
	g := newGame(t)
	placed := false
	for x := 5; x < 25 && !placed; x++ {
		c := gridmap.Coord{X: x, Y: 0}
		if g.CanPlace(defs.TowerRifleman, c) {
			_, err := g.PlaceTower(defs.TowerRifleman, c)
			require.NoError(t, err)
			placed = true
		}
	}
	require.True(t, placed)
	log := NewEventLog(100)
	log.Record(g.Clock(), g.Update(0.016))

	s := Capture(g, log)
	assert.Equal(t, g.SessionID(), s.SessionID)
	assert.Equal(t, int64(3), s.Seed)
	assert.Equal(t, "build", s.Phase)
	assert.Equal(t, 30, s.Grid.Width)
	assert.Equal(t, 1, s.Grid.TowerCount)
	assert.Len(t, s.Towers, 1)
	assert.Equal(t, g.Grid().PathLength(), s.Path.Length)
	assert.Len(t, s.Path.Head, 10)
	assert.Len(t, s.Path.Tail, 10)
	assert.Equal(t, g.Grid().Start(), s.Path.Head[0])
	require.Len(t, s.RecentEvents, 1)
	assert.Equal(t, event.TowerPlaced, s.RecentEvents[0].Type)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"tower_placed"`)
}

func TestSummarisePath_Short(t *testing.T) {
	path := []gridmap.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}
	p := summarisePath(path, 1)
	assert.Equal(t, path, p.Head)
	assert.Nil(t, p.Tail)
}

func TestSave(t *testing.T) {
	g := newGame(t)
	dir := t.TempDir()

	path, err := Save(Capture(g, nil), dir)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.SessionID(), back["session_id"])
}

func TestStore(t *testing.T) {
	store := NewStore()
	_, ok := store.Latest()
	assert.False(t, ok)

	changed := store.Changed()
	store.Publish(Snapshot{SessionID: "a"})
	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("publish did not wake waiters")
	}

	s, ok := store.Latest()
	assert.True(t, ok)
	assert.Equal(t, "a", s.SessionID)
	assert.Equal(t, uint64(1), store.Version())
}

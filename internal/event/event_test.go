package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_OrderAndSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { calls = append(calls, "a") }))
	d.SubscribeAll(ListenerFunc(func(e Event) { calls = append(calls, "all:"+string(e.Type)) }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { calls = append(calls, "b") }))

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: WaveStarted})

	assert.Equal(t, []string{"all:enemy_killed", "a", "b", "all:wave_started"}, calls)
}

func TestDispatcher_NestedDispatchIsRecordedAfterCause(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.SubscribeAll(rec)
	d.Subscribe(EnemyReachedEnd, ListenerFunc(func(Event) {
		d.Dispatch(Event{Type: GameOver})
	}))
	d.Dispatch(Event{Type: EnemyReachedEnd})

	events := rec.Drain()
	assert.Len(t, events, 2)
	assert.Equal(t, EnemyReachedEnd, events[0].Type)
	assert.Equal(t, GameOver, events[1].Type)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.Subscribe(TowerPlaced, rec)
	d.Dispatch(Event{Type: TowerPlaced})
	d.Unsubscribe(TowerPlaced, rec)
	d.Dispatch(Event{Type: TowerPlaced})
	assert.Equal(t, 1, rec.Len())
}

func TestRecorder_Drain(t *testing.T) {
	rec := &Recorder{}
	rec.OnEvent(Event{Type: WaveStarted})
	rec.OnEvent(Event{Type: EnemySpawned})
	events := rec.Drain()
	assert.Len(t, events, 2)
	assert.Equal(t, WaveStarted, events[0].Type)
	assert.Empty(t, rec.Drain())
}

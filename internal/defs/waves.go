package defs

import (
	"encoding/json"
	"time"
)

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Walkers       int           // Количество ходоков
	Runners       int           // Количество бегунов
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// Total returns the number of enemies in the wave.
func (w WaveDefinition) Total() int {
	return w.Walkers + w.Runners
}

// Queue builds the unshuffled spawn queue: walkers first, then runners.
func (w WaveDefinition) Queue() []EnemyKind {
	q := make([]EnemyKind, 0, w.Total())
	for i := 0; i < w.Walkers; i++ {
		q = append(q, EnemyWalker)
	}
	for i := 0; i < w.Runners; i++ {
		q = append(q, EnemyRunner)
	}
	return q
}

type waveJSON struct {
	Walkers int   `json:"walkers"`
	Runners int   `json:"runners"`
	DelayMS int64 `json:"delay_ms"`
}

// MarshalJSON writes the interval as whole milliseconds.
func (w WaveDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(waveJSON{
		Walkers: w.Walkers,
		Runners: w.Runners,
		DelayMS: w.SpawnInterval.Milliseconds(),
	})
}

func (w *WaveDefinition) UnmarshalJSON(data []byte) error {
	var raw waveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.Walkers = raw.Walkers
	w.Runners = raw.Runners
	w.SpawnInterval = time.Duration(raw.DelayMS) * time.Millisecond
	return nil
}

// defaultWaves определяет последовательность волн в игре.
func defaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{Walkers: 5, Runners: 0, SpawnInterval: time.Millisecond * 1000},
		{Walkers: 8, Runners: 2, SpawnInterval: time.Millisecond * 800},
		{Walkers: 12, Runners: 5, SpawnInterval: time.Millisecond * 700},
		{Walkers: 15, Runners: 10, SpawnInterval: time.Millisecond * 600},
		{Walkers: 20, Runners: 15, SpawnInterval: time.Millisecond * 500},
	}
}

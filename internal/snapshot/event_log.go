// internal/snapshot/event_log.go
package snapshot

import (
	"sync"
	"time"

	"go-maze-defense/internal/event"
)

// Entry is one logged game event.
type Entry struct {
	Seq       uint64          `json:"seq"`
	Timestamp time.Time       `json:"timestamp"`
	GameTime  float64         `json:"game_time"`
	Type      event.EventType `json:"type"`
	Data      interface{}     `json:"data,omitempty"`
}

// EventLog is a bounded ring of recent events, safe for concurrent readers.
type EventLog struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	seq      uint64
}

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = 1
	}
	return &EventLog{capacity: capacity}
}

// Record appends events in order, dropping the oldest entries past capacity.
func (l *EventLog) Record(gameTime float64, events []event.Event) {
	if len(events) == 0 {
		return
	}
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range events {
		l.seq++
		l.entries = append(l.entries, Entry{
			Seq:       l.seq,
			Timestamp: now,
			GameTime:  gameTime,
			Type:      e.Type,
			Data:      e.Data,
		})
	}
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
}

// Since returns the entries with Seq greater than seq.
func (l *EventLog) Since(seq uint64) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i, e := range l.entries {
		if e.Seq > seq {
			return append([]Entry(nil), l.entries[i:]...)
		}
	}
	return nil
}

// Last returns up to n most recent entries, oldest first.
func (l *EventLog) Last(n int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return append([]Entry(nil), l.entries[len(l.entries)-n:]...)
}

func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Seq returns the sequence number of the newest entry.
func (l *EventLog) Seq() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.seq
}

// Reset drops all entries. Sequence numbers keep growing.
func (l *EventLog) Reset() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// Package eventlog implements the registry's append-only event log.
// Sequence numbers are assigned in append order, which equals operation
// commit order because the registry appends while holding its state lock.
package eventlog

import (
	"sync"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// Memory is an in-memory interfaces.EventLog. External subscribers poll it
// with Since using the last sequence number they have seen as a cursor.
type Memory struct {
	mu     sync.Mutex
	events []interfaces.Event
}

// NewMemory creates an empty event log.
func NewMemory() *Memory {
	return &Memory{}
}

// Append adds the event and returns its assigned sequence number.
func (m *Memory) Append(event interfaces.Event) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	event.Sequence = uint64(len(m.events)) + 1
	m.events = append(m.events, event)
	return event.Sequence
}

// Since returns up to limit events with sequence numbers strictly greater
// than after, in order. A non-positive limit means no limit.
func (m *Memory) Since(after uint64, limit int) []interfaces.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if after >= uint64(len(m.events)) {
		return nil
	}

	pending := m.events[after:]
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	out := make([]interfaces.Event, len(pending))
	copy(out, pending)
	return out
}

// Len returns the sequence number of the newest event, or 0 if the log is
// empty.
func (m *Memory) Len() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return uint64(len(m.events))
}

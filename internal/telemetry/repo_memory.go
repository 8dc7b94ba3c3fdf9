package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// metaSessionKey is the metadata field carrying the owning game session ID.
const metaSessionKey = "session"

// Repository stores gameplay telemetry events.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	// SessionEvents returns every event recorded for one game session,
	// in record order.
	SessionEvents(sessionID string) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps events in memory with a per-session index.
type MemoryRepository struct {
	mu        sync.RWMutex
	events    []Event
	bySession map[string][]int
	nextID    int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bySession: make(map[string][]int),
		nextID:    1,
	}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	event := Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	}
	r.events = append(r.events, event)
	r.nextID++

	if sid, ok := metadata[metaSessionKey].(string); ok && sid != "" {
		r.bySession[sid] = append(r.bySession[sid], len(r.events)-1)
	}
	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *MemoryRepository) SessionEvents(sessionID string) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idxs := r.bySession[sessionID]
	result := make([]Event, 0, len(idxs))
	for _, i := range idxs {
		result = append(result, r.events[i])
	}
	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
	r.bySession = make(map[string][]int)
	r.nextID = 1
	return nil
}

package runtime

import (
	"sync"

	"talker/contract"
)

type Set map[string]struct{}

type Registry struct {
	mu         sync.RWMutex
	sessions   map[string]contract.Subscriber // map subscriber -> sink and limit
	logMembers map[string]Set                 // map log to subscribers
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:   make(map[string]contract.Subscriber),
		logMembers: make(map[string]Set),
	}
}

// GetSinksForLog retrieves the subscribers currently following a log.
// Returns nil if nobody follows it.
func (r *Registry) GetSinksForLog(logID string) []contract.Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.logMembers[logID]
	if !ok {
		return nil
	}
	var active []contract.Subscriber
	for subscriberID := range members {
		if subscriber, exists := r.sessions[subscriberID]; exists {
			active = append(active, subscriber)
		}
	}
	return active
}

// Subscribe registers a subscriber's connection on a log.
// If the log is not followed yet, it is initialized on the fly.
func (r *Registry) Subscribe(subscriberID string, logID string, limit int, sink contract.WindowSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[subscriberID] = contract.Subscriber{ID: subscriberID, Limit: limit, Sink: sink}

	if _, ok := r.logMembers[logID]; !ok {
		r.logMembers[logID] = make(Set)
	}
	r.logMembers[logID][subscriberID] = struct{}{}
}

// Unsubscribe removes a subscriber and leaves no empty set behind.
func (r *Registry) Unsubscribe(subscriberID string, logID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, subscriberID)

	if members, ok := r.logMembers[logID]; ok {
		delete(members, subscriberID)
		if len(members) == 0 {
			delete(r.logMembers, logID)
		}
	}
}

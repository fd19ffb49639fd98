package httpapi

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/huangsam/scorecard/core"
)

// ErrSessionNotFound is returned for unknown or deleted session IDs.
var ErrSessionNotFound = errors.New("session not found")

// sessionEntry guards one session. Requests on the same session are serialized.
type sessionEntry struct {
	mu      sync.Mutex
	session *core.Session
}

// with runs fn while holding the session lock.
func (e *sessionEntry) with(fn func(s *core.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Registry holds the independent in-memory sessions of the HTTP API.
type Registry struct {
	base     core.CatalogSet
	selected []string

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewRegistry creates an empty registry whose sessions start from the given catalogs.
func NewRegistry(base core.CatalogSet, selected []string) *Registry {
	return &Registry{
		base:     base,
		selected: slices.Clone(selected),
		sessions: make(map[string]*sessionEntry),
	}
}

// Create starts a new session. A nil selection uses the registry default.
func (r *Registry) Create(selected []string) (string, *sessionEntry) {
	if selected == nil {
		selected = r.selected
	}
	id := uuid.NewString()
	entry := &sessionEntry{session: core.NewSession(r.base, selected)}

	r.mu.Lock()
	r.sessions[id] = entry
	r.mu.Unlock()
	return id, entry
}

// Get returns the session with the given ID.
func (r *Registry) Get(id string) (*sessionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// Delete removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

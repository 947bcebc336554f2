package storage

import "viewmark/internal/bookmark"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// LoadCollection returns the named store, or an empty store when nothing
	// was saved under that name yet.
	LoadCollection(name string) (*bookmark.Store, error)
	SaveCollection(name string, s *bookmark.Store) error

	// LoadTracking reports false when no tracking state was saved under key.
	LoadTracking(key string) (bookmark.TrackingState, bool, error)
	SaveTracking(key string, t bookmark.TrackingState) error
}

// Persister binds a backend to one collection and tracking key so it can be
// handed to a controller as its save hook.
type Persister struct {
	Backend     Backend
	Collection  string
	TrackingKey string
}

func (p Persister) SaveCollection(s *bookmark.Store) error {
	return p.Backend.SaveCollection(p.Collection, s)
}

func (p Persister) SaveTracking(t bookmark.TrackingState) error {
	return p.Backend.SaveTracking(p.TrackingKey, t)
}

// Package store holds the named images of an editing session.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/image-script/internal/raster"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("image not found")

// NotFoundError reports a lookup of an identifier that was never stored.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("image not found: %s", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Store maps identifiers to images.
//
// Put overwrites any previous entry with the same identifier. Entries are
// never evicted; a Store lives as long as the session that owns it.
//
// Store is safe for concurrent use. Images themselves are shared, not copied,
// so callers must treat a stored image as read-only.
//
// # Example Usage
//
//	s := store.New()
//	if err := s.Put("koala", img); err != nil {
//	    return err
//	}
//	img, err := s.Get("koala")
type Store struct {
	mu     sync.RWMutex
	images map[string]*raster.Image
}

// New creates an empty store.
func New() *Store {
	return &Store{
		images: make(map[string]*raster.Image),
	}
}

// Put stores img under id, replacing any existing entry.
//
// Returns an error if id is empty or img is nil.
func (s *Store) Put(id string, img *raster.Image) error {
	if id == "" {
		return errors.New("image id must not be empty")
	}
	if img == nil {
		return fmt.Errorf("cannot store nil image under %q", id)
	}
	s.mu.Lock()
	s.images[id] = img
	s.mu.Unlock()
	return nil
}

// Get returns the image stored under id.
//
// Returns *NotFoundError if nothing was stored under id.
func (s *Store) Get(id string) (*raster.Image, error) {
	s.mu.RLock()
	img, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return img, nil
}

// Has reports whether id is present.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	_, ok := s.images[id]
	s.mu.RUnlock()
	return ok
}

// IDs returns every stored identifier in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.images))
	for id := range s.images {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len returns the number of stored images.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

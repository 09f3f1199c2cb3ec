package store

import (
	"context"
	"sync"
)

// Serial wraps a Store with a process-wide single-writer discipline.
// Every mutation goes through Update, which holds the lock across the full
// load-mutate-save cycle, so concurrent updates to distinct records are
// never lost to an interleaved save. The underlying Store itself stays
// last-writer-wins.
type Serial struct {
	mu      sync.Mutex
	backend Store
}

// NewSerial wraps backend with the single-writer discipline.
func NewSerial(backend Store) *Serial {
	return &Serial{backend: backend}
}

// Load returns the current document.
func (s *Serial) Load(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Load(ctx)
}

// Update runs fn against the freshly loaded document and persists the
// result. When fn returns an error the document is left untouched.
func (s *Serial) Update(ctx context.Context, fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&snap); err != nil {
		return err
	}
	return s.backend.Save(ctx, snap)
}

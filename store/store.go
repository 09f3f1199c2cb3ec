package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrCorruptDocument signals the persisted document is structurally
	// broken, e.g. a required collection is missing. This is a server-side
	// data error, never an empty result.
	ErrCorruptDocument = errors.New("store: corrupt document")
	// ErrInvalidID signals an identifier that cannot be parsed from its
	// external string representation.
	ErrInvalidID = errors.New("store: invalid id")
)

// Store owns the on-disk representation of the snapshot document.
//
// Load returns the current document, initializing and persisting the
// empty-collections default on first run; a missing document is never an
// error. Save serializes the full document and replaces any prior content.
//
// The contract is last-writer-wins at whole-document granularity: a caller
// doing load-mutate-save concurrently with another writer can lose updates.
// Callers needing stronger guarantees must serialize access themselves;
// see Serial.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// ParseID converts the external decimal representation of an identifier to
// its canonical int64 form. A malformed identifier is an input error, not
// a "not found".
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

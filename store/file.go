package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the snapshot document as a single pretty-printed JSON
// file, replacing the whole file on every save.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. An absent file is treated as first
// run: the empty default is persisted and returned.
func (f *FileStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			snap := NewSnapshot()
			if err := f.Save(ctx, snap); err != nil {
				return Snapshot{}, fmt.Errorf("store: initialize document: %w", err)
			}
			return snap, nil
		}
		return Snapshot{}, fmt.Errorf("store: read document: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return snap, nil
}

// Save writes the full document, replacing any prior content. The write
// goes through a temp file and rename so a crash mid-write cannot leave a
// truncated document behind.
func (f *FileStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("store: create temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close document: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: replace document: %w", err)
	}
	return nil
}

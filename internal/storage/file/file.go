// Package file stores bookmark collections and tracking state as JSON files,
// one file per collection and one per tracking key.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"viewmark/internal/bookmark"
	"viewmark/internal/config"
	"viewmark/internal/storage/record"
)

const (
	collectionSuffix = ".bookmarks.json"
	trackingSuffix   = ".tracking.json"
)

type Backend struct {
	dir string
}

func New(cfg config.FileConfig) *Backend {
	return &Backend{dir: cfg.Dir}
}

// Init creates the output directory.
func (b *Backend) Init() error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}

func (b *Backend) Close() error {
	return nil
}

func (b *Backend) LoadCollection(name string) (*bookmark.Store, error) {
	path, err := b.path(name, collectionSuffix)
	if err != nil {
		return nil, err
	}
	var c record.Collection
	found, err := readJSON(path, &c)
	if err != nil || !found {
		return bookmark.NewStore(), err
	}
	s, err := c.Store()
	if err != nil {
		return bookmark.NewStore(), fmt.Errorf("load collection %q: %w", name, err)
	}
	return s, nil
}

func (b *Backend) SaveCollection(name string, s *bookmark.Store) error {
	path, err := b.path(name, collectionSuffix)
	if err != nil {
		return err
	}
	c := record.FromStore(name, s)
	c.SavedAt = time.Now().UTC()
	return writeJSON(path, c)
}

func (b *Backend) LoadTracking(key string) (bookmark.TrackingState, bool, error) {
	path, err := b.path(key, trackingSuffix)
	if err != nil {
		return bookmark.TrackingState{}, false, err
	}
	var r record.Tracking
	found, err := readJSON(path, &r)
	if err != nil || !found {
		return bookmark.TrackingState{}, false, err
	}
	st, err := r.State()
	if err != nil {
		return bookmark.TrackingState{}, false, fmt.Errorf("load tracking %q: %w", key, err)
	}
	return st, true, nil
}

func (b *Backend) SaveTracking(key string, t bookmark.TrackingState) error {
	path, err := b.path(key, trackingSuffix)
	if err != nil {
		return err
	}
	r := record.FromTracking(key, t)
	r.SavedAt = time.Now().UTC()
	return writeJSON(path, r)
}

func (b *Backend) path(name, suffix string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid storage name %q", name)
	}
	return filepath.Join(b.dir, name+suffix), nil
}

func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// writeJSON writes through a temp file so a crash mid-write keeps the old file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

package storage

import (
	"fmt"

	"viewmark/internal/config"
	"viewmark/internal/storage/file"
	sqlitestorage "viewmark/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Type {
	case "file", "":
		return file.New(cfg.File), nil
	case "sqlite":
		return sqlitestorage.New(cfg.SQLite), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// Package sqlitestorage stores bookmark collections and tracking state in a
// SQLite database through GORM.
package sqlitestorage

import (
	"errors"
	"fmt"

	"viewmark/internal/bookmark"
	"viewmark/internal/config"
	"viewmark/internal/storage/record"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Backend struct {
	cfg config.SQLiteConfig
	db  *gorm.DB
}

func New(cfg config.SQLiteConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init opens the database and migrates the schema. An empty path opens a
// shared in-memory database.
func (b *Backend) Init() error {
	dsn := b.cfg.Path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	if b.cfg.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d;", b.cfg.BusyTimeout.Milliseconds())
		if err := db.Exec(pragma).Error; err != nil {
			return fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}
	if err := db.AutoMigrate(&collectionModel{}, &bookmarkModel{}, &trackingModel{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	b.db = db
	return nil
}

func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	b.db = nil
	return sqlDB.Close()
}

func (b *Backend) LoadCollection(name string) (*bookmark.Store, error) {
	if b.db == nil {
		return nil, errNotInitialized
	}
	var col collectionModel
	err := b.db.Where("name = ?", name).First(&col).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bookmark.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %q: %w", name, err)
	}

	var rows []bookmarkModel
	if err := b.db.Where("collection_id = ?", col.ID).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load bookmarks of %q: %w", name, err)
	}
	rec := record.Collection{Name: name, Selected: col.Selected, Bookmarks: make([]record.Bookmark, len(rows))}
	for i, row := range rows {
		rec.Bookmarks[i] = record.Bookmark{Name: row.Name, Snapshot: row.Snapshot.record()}
	}
	s, err := rec.Store()
	if err != nil {
		return nil, fmt.Errorf("load collection %q: %w", name, err)
	}
	return s, nil
}

// SaveCollection replaces the stored collection in one transaction.
func (b *Backend) SaveCollection(name string, s *bookmark.Store) error {
	if b.db == nil {
		return errNotInitialized
	}
	rec := record.FromStore(name, s)
	return b.db.Transaction(func(tx *gorm.DB) error {
		col := collectionModel{Name: name}
		if err := tx.Where("name = ?", name).FirstOrCreate(&col).Error; err != nil {
			return fmt.Errorf("upsert collection %q: %w", name, err)
		}
		if err := tx.Model(&col).Update("selected", rec.Selected).Error; err != nil {
			return fmt.Errorf("update selection of %q: %w", name, err)
		}
		if err := tx.Where("collection_id = ?", col.ID).Delete(&bookmarkModel{}).Error; err != nil {
			return fmt.Errorf("clear bookmarks of %q: %w", name, err)
		}
		if len(rec.Bookmarks) == 0 {
			return nil
		}
		rows := make([]bookmarkModel, len(rec.Bookmarks))
		for i, bm := range rec.Bookmarks {
			rows[i] = bookmarkModel{
				CollectionID: col.ID,
				Position:     i,
				Name:         bm.Name,
				Snapshot:     snapshotFromRecord(bm.Snapshot),
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert bookmarks of %q: %w", name, err)
		}
		return nil
	})
}

func (b *Backend) LoadTracking(key string) (bookmark.TrackingState, bool, error) {
	if b.db == nil {
		return bookmark.TrackingState{}, false, errNotInitialized
	}
	var row trackingModel
	err := b.db.Where("tracking_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bookmark.TrackingState{}, false, nil
	}
	if err != nil {
		return bookmark.TrackingState{}, false, fmt.Errorf("load tracking %q: %w", key, err)
	}
	rec := record.Tracking{Key: key, Snapshot: row.Snapshot.record(), Captured: row.Captured}
	st, err := rec.State()
	if err != nil {
		return bookmark.TrackingState{}, false, fmt.Errorf("load tracking %q: %w", key, err)
	}
	return st, true, nil
}

func (b *Backend) SaveTracking(key string, t bookmark.TrackingState) error {
	if b.db == nil {
		return errNotInitialized
	}
	rec := record.FromTracking(key, t)
	row := trackingModel{
		Key:      key,
		Snapshot: snapshotFromRecord(rec.Snapshot),
		Captured: rec.Captured,
	}
	err := b.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save tracking %q: %w", key, err)
	}
	return nil
}

var errNotInitialized = errors.New("sqlite backend not initialized")

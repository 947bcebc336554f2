package sqlitestorage

import (
	"time"

	"viewmark/internal/storage/record"
)

type collectionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Selected  int
	UpdatedAt time.Time
}

func (collectionModel) TableName() string { return "bookmark_collections" }

type bookmarkModel struct {
	ID           uint `gorm:"primaryKey"`
	CollectionID uint `gorm:"index;not null"`
	Position     int  `gorm:"not null"`
	Name         string
	Snapshot     snapshotColumns `gorm:"embedded"`
}

func (bookmarkModel) TableName() string { return "bookmarks" }

type trackingModel struct {
	Key       string          `gorm:"primaryKey;column:tracking_key"`
	Snapshot  snapshotColumns `gorm:"embedded"`
	Captured  bool
	UpdatedAt time.Time
}

func (trackingModel) TableName() string { return "tracking_states" }

type poseColumns struct {
	PX, PY, PZ     float32
	RX, RY, RZ, RW float32
}

type snapshotColumns struct {
	Camera    poseColumns `gorm:"embedded;embeddedPrefix:camera_"`
	HasPlayer bool
	Player    poseColumns `gorm:"embedded;embeddedPrefix:player_"`
	Mode      string
	Scene     string
}

func poseFromRecord(r record.Pose) poseColumns {
	return poseColumns{
		PX: r.Position[0], PY: r.Position[1], PZ: r.Position[2],
		RX: r.Rotation[0], RY: r.Rotation[1], RZ: r.Rotation[2], RW: r.Rotation[3],
	}
}

func (p poseColumns) record() record.Pose {
	return record.Pose{
		Position: [3]float32{p.PX, p.PY, p.PZ},
		Rotation: [4]float32{p.RX, p.RY, p.RZ, p.RW},
	}
}

func snapshotFromRecord(r record.Snapshot) snapshotColumns {
	s := snapshotColumns{
		Camera: poseFromRecord(r.Camera),
		Mode:   r.Mode,
		Scene:  r.Scene,
	}
	if r.Player != nil {
		s.HasPlayer = true
		s.Player = poseFromRecord(*r.Player)
	}
	return s
}

func (s snapshotColumns) record() record.Snapshot {
	r := record.Snapshot{
		Camera: s.Camera.record(),
		Mode:   s.Mode,
		Scene:  s.Scene,
	}
	if s.HasPlayer {
		pl := s.Player.record()
		r.Player = &pl
	}
	return r
}

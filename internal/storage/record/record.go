// Package record defines the persisted shape of bookmarks and tracking state,
// shared by every storage backend.
package record

import (
	"fmt"
	"time"

	"viewmark/internal/bookmark"
	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Pose struct {
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"`
}

type Snapshot struct {
	Camera Pose   `json:"camera"`
	Player *Pose  `json:"player,omitempty"`
	Mode   string `json:"mode"`
	Scene  string `json:"scene"`
}

type Bookmark struct {
	Name     string   `json:"name"`
	Snapshot Snapshot `json:"snapshot"`
}

// Collection is a whole bookmark store under a name.
type Collection struct {
	Name      string     `json:"name"`
	Selected  int        `json:"selected"`
	Bookmarks []Bookmark `json:"bookmarks"`
	SavedAt   time.Time  `json:"savedAt"`
}

type Tracking struct {
	Key      string    `json:"key"`
	Snapshot Snapshot  `json:"snapshot"`
	Captured bool      `json:"captured"`
	SavedAt  time.Time `json:"savedAt"`
}

func FromPose(p pose.Pose) Pose {
	return Pose{
		Position: [3]float32{p.Position.X, p.Position.Y, p.Position.Z},
		Rotation: [4]float32{p.Rotation.X, p.Rotation.Y, p.Rotation.Z, p.Rotation.W},
	}
}

func (r Pose) Pose() pose.Pose {
	return pose.New(
		rl.Vector3{X: r.Position[0], Y: r.Position[1], Z: r.Position[2]},
		rl.Quaternion{X: r.Rotation[0], Y: r.Rotation[1], Z: r.Rotation[2], W: r.Rotation[3]},
	)
}

func FromSnapshot(s pose.Snapshot) Snapshot {
	out := Snapshot{
		Camera: FromPose(s.CameraPose()),
		Mode:   s.Mode().String(),
		Scene:  s.SceneName(),
	}
	if pl, ok := s.PlayerPose(); ok {
		rec := FromPose(pl)
		out.Player = &rec
	}
	return out
}

func (r Snapshot) Snapshot() (pose.Snapshot, error) {
	mode, err := pose.ParseControllerMode(r.Mode)
	if err != nil {
		return pose.Snapshot{}, err
	}
	if r.Player == nil {
		return pose.NewSnapshot(r.Camera.Pose(), nil, mode, r.Scene), nil
	}
	pl := r.Player.Pose()
	return pose.NewSnapshot(r.Camera.Pose(), &pl, mode, r.Scene), nil
}

// FromStore captures the store's entries and selection.
func FromStore(name string, s *bookmark.Store) Collection {
	entries := s.Entries()
	c := Collection{
		Name:      name,
		Selected:  s.Selected(),
		Bookmarks: make([]Bookmark, len(entries)),
	}
	for i, e := range entries {
		c.Bookmarks[i] = Bookmark{Name: e.Name, Snapshot: FromSnapshot(e.Snapshot)}
	}
	return c
}

// Store rebuilds a bookmark store. Duplicate names or unknown modes fail the
// whole collection rather than dropping entries.
func (c Collection) Store() (*bookmark.Store, error) {
	entries := make([]bookmark.Entry, len(c.Bookmarks))
	for i, b := range c.Bookmarks {
		snap, err := b.Snapshot.Snapshot()
		if err != nil {
			return nil, fmt.Errorf("bookmark %q: %w", b.Name, err)
		}
		entries[i] = bookmark.Entry{Name: b.Name, Snapshot: snap}
	}
	return bookmark.NewStoreFromEntries(entries, c.Selected)
}

func FromTracking(key string, t bookmark.TrackingState) Tracking {
	return Tracking{Key: key, Snapshot: FromSnapshot(t.Last), Captured: t.Captured}
}

func (r Tracking) State() (bookmark.TrackingState, error) {
	snap, err := r.Snapshot.Snapshot()
	if err != nil {
		return bookmark.TrackingState{}, err
	}
	return bookmark.TrackingState{Last: snap, Captured: r.Captured}, nil
}

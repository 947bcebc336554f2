package controller

import (
	"viewmark/internal/bookmark"
	"viewmark/internal/pose"
	"viewmark/internal/restore"
)

// PoseSource reads the live poses. PlayerPose reports false when no player exists.
type PoseSource interface {
	CameraPose() pose.Pose
	PlayerPose() (pose.Pose, bool)
}

// PoseSink receives restored poses.
type PoseSink = restore.Sink

// ModeProvider reports the controller mode currently driving the scene.
type ModeProvider interface {
	ActiveMode() pose.ControllerMode
}

// Action is a bookmark input binding.
type Action int

const (
	ActionNext Action = iota
	ActionPrevious
	ActionAdd
	ActionOverride
	ActionRemove
	ActionToggleTracking
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionAdd:
		return "add"
	case ActionOverride:
		return "override"
	case ActionRemove:
		return "remove"
	case ActionToggleTracking:
		return "toggleTracking"
	}
	return "unknown"
}

// InputSource supplies already debounced input. Bookmark actions fire when the
// primary modifier is held and the action's key went down this frame.
type InputSource interface {
	PrimaryHeld() bool
	Pressed(a Action) bool
}

// SceneNamer is optional; without it captures use pose.DefaultSceneName.
type SceneNamer interface {
	SceneName() string
}

// Persister is the fire-and-forget save hook. Errors are logged by the caller.
type Persister interface {
	SaveCollection(store *bookmark.Store) error
	SaveTracking(state bookmark.TrackingState) error
}

// Frame is the per-frame context the host passes to Update.
type Frame struct {
	Index     uint64
	Context   pose.ExecutionContext
	Suspended bool
}

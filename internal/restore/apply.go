package restore

import (
	"errors"
	"fmt"

	"viewmark/internal/pose"
)

// ErrMissingReference matches every MissingReferenceWarning.
var ErrMissingReference = errors.New("missing reference")

// MissingReferenceWarning reports a restore step that had nothing to write
// to, or nothing to write. It is never fatal.
type MissingReferenceWarning struct {
	Ref    string
	Reason string
}

func (w *MissingReferenceWarning) Error() string {
	return fmt.Sprintf("%s not restored: %s", w.Ref, w.Reason)
}

func (w *MissingReferenceWarning) Is(target error) bool {
	return target == ErrMissingReference
}

// Sink receives the poses of a restore.
type Sink interface {
	HasCamera() bool
	HasPlayer() bool
	SetCameraPose(p pose.Pose)
	SetPlayerPose(p pose.Pose)
	SetControllerEnabled(enabled bool)
}

// Result records which parts of an application were written.
type Result struct {
	CameraApplied bool
	PlayerApplied bool
}

// Apply writes app into sink. All references are checked before anything is
// written: a camera target with no live camera aborts the whole restore, and
// a player target with no live player (or no stored player pose) still lets
// the camera through. Both cases return a *MissingReferenceWarning.
func Apply(app Application, sink Sink) (Result, error) {
	var res Result
	if app.Camera != nil && !sink.HasCamera() {
		return res, &MissingReferenceWarning{Ref: "camera", Reason: "no live camera"}
	}

	var warn error
	writePlayer := app.Player != nil
	switch {
	case app.PlayerMissing:
		warn = &MissingReferenceWarning{Ref: "player", Reason: "snapshot has no player pose"}
	case writePlayer && !sink.HasPlayer():
		writePlayer = false
		warn = &MissingReferenceWarning{Ref: "player", Reason: "no live player"}
	}

	toggle := app.ToggleController && writePlayer
	if toggle {
		sink.SetControllerEnabled(false)
	}
	if app.Camera != nil {
		sink.SetCameraPose(app.Camera.Normalized())
		res.CameraApplied = true
	}
	if writePlayer {
		sink.SetPlayerPose(app.Player.Normalized())
		res.PlayerApplied = true
	}
	if toggle {
		sink.SetControllerEnabled(true)
	}
	return res, warn
}

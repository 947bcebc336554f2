// Package restore decides which stored poses a restore writes back, given the
// controller mode a snapshot was captured in and the mode active now.
package restore

import "viewmark/internal/pose"

// DefaultFlyingCameraHeight is the camera height forced when a first-person
// capture is restored into the flying camera. It matches the default
// character controller height so the flying camera starts at head level.
const DefaultFlyingCameraHeight float32 = 1.8

// Application describes exactly what a restore writes. Nil targets are left alone.
type Application struct {
	Camera *pose.Pose
	Player *pose.Pose
	// ToggleController disables the physics-driven controller around the write
	// so the teleport is not resolved as a collision.
	ToggleController bool
	// PlayerMissing is set when the rule wanted a player pose the snapshot lacks.
	PlayerMissing bool
}

// IsEmpty reports whether the application writes nothing.
func (a Application) IsEmpty() bool {
	return a.Camera == nil && a.Player == nil
}

type source int

const (
	fromNone source = iota
	fromCamera
	fromPlayer
	// fromRig is the stored player pose, or the camera pose when no player
	// was captured. Only the camera slot reads it; a player slot never takes
	// a camera pose in place of a missing player pose.
	fromRig
)

type rule struct {
	camera      source
	player      source
	forceHeight bool
	toggle      bool
}

type modePair struct {
	stored pose.ControllerMode
	target pose.ControllerMode
}

var passthrough = rule{camera: fromCamera, player: fromPlayer}

// rules covers every pair whose behavior differs from passthrough.
var rules = map[modePair]rule{
	{pose.FirstPerson, pose.FirstPerson}:  {camera: fromRig, player: fromPlayer, toggle: true},
	{pose.FirstPerson, pose.ThirdPerson}:  {player: fromPlayer},
	{pose.FirstPerson, pose.FlyingCamera}: {camera: fromRig, forceHeight: true},
	{pose.FirstPerson, pose.Custom}:       {camera: fromRig, player: fromPlayer},

	// A scene view capture has no authoritative player pose: the scene camera
	// is the viewpoint, and the player is placed there.
	{pose.SceneViewEditor, pose.FirstPerson}: {camera: fromCamera, player: fromCamera, toggle: true},
}

func init() {
	// In the editor only the scene camera can move.
	for _, stored := range pose.Modes {
		rules[modePair{stored, pose.SceneViewEditor}] = rule{camera: fromCamera}
	}
}

// Policy resolves snapshots into applications. FlyingCameraHeight is used as
// given; zero places the camera at ground level.
type Policy struct {
	FlyingCameraHeight float32
}

func NewPolicy() *Policy {
	return &Policy{FlyingCameraHeight: DefaultFlyingCameraHeight}
}

// TargetMode returns the mode restores resolve against: the active mode in
// play, the scene view in the editor.
func TargetMode(active pose.ControllerMode, ctx pose.ExecutionContext) pose.ControllerMode {
	if ctx == pose.ContextEditor {
		return pose.SceneViewEditor
	}
	return active
}

// Resolve looks up the rule for the snapshot's capture mode and target.
func (p Policy) Resolve(target pose.ControllerMode, snap pose.Snapshot) Application {
	r, ok := rules[modePair{snap.Mode(), target}]
	if !ok {
		r = passthrough
	}

	var app Application
	app.ToggleController = r.toggle

	if cam, ok := p.pick(r.camera, snap); ok {
		if r.forceHeight {
			cam = cam.WithHeight(p.FlyingCameraHeight)
		}
		app.Camera = &cam
	}
	if r.player != fromNone {
		if pl, ok := p.pick(r.player, snap); ok {
			app.Player = &pl
		} else {
			app.PlayerMissing = true
		}
	}
	return app
}

func (p Policy) pick(src source, snap pose.Snapshot) (pose.Pose, bool) {
	switch src {
	case fromCamera:
		return snap.CameraPose(), true
	case fromPlayer:
		return snap.PlayerPose()
	case fromRig:
		if pl, ok := snap.PlayerPose(); ok {
			return pl, true
		}
		return snap.CameraPose(), true
	}
	return pose.Pose{}, false
}

package components

import (
	"viewmark/internal/bookmark"
	"viewmark/internal/controller"
	"viewmark/internal/engine"
	"viewmark/internal/pose"
	"viewmark/internal/restore"

	"github.com/rs/zerolog"
)

// ViewpointsOptions carries the optional collaborators of a Viewpoints component.
type ViewpointsOptions struct {
	Mode     pose.ControllerMode
	Tracking bool
	Input    controller.InputSource
	Persist  controller.Persister
	Store    *bookmark.Store
	State    *bookmark.TrackingState
	Policy   *restore.Policy
	Logger   zerolog.Logger
}

// Viewpoints binds a bookmark controller to a camera object and an optional
// player object. It reads and writes their world poses and reports Mode as
// the active controller mode.
type Viewpoints struct {
	engine.BaseComponent
	Camera *engine.GameObject
	Player *engine.GameObject
	Mode   pose.ControllerMode

	Controller *controller.Controller
}

func NewViewpoints(cam, player *engine.GameObject, opts ViewpointsOptions) (*Viewpoints, error) {
	v := &Viewpoints{Camera: cam, Player: player, Mode: opts.Mode}
	c, err := controller.New(controller.Dependencies{
		Source:   v,
		Sink:     v,
		Modes:    v,
		Input:    opts.Input,
		Scenes:   v,
		Persist:  opts.Persist,
		Store:    opts.Store,
		Tracking: opts.State,
		Policy:   opts.Policy,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	c.SetTracking(opts.Tracking)
	v.Controller = c
	return v, nil
}

// Start resumes the tracked pose, if any.
func (v *Viewpoints) Start() {
	v.Controller.Enable(v.frame())
}

func (v *Viewpoints) Update(deltaTime float32) {
	v.Controller.Update(v.frame())
}

// OnEnable implements engine.Enabler.
func (v *Viewpoints) OnEnable() {
	v.Controller.Enable(v.frame())
}

// OnDisable implements engine.Disabler.
func (v *Viewpoints) OnDisable() {
	v.Controller.Disable()
}

func (v *Viewpoints) frame() controller.Frame {
	g := v.GetGameObject()
	if g == nil || g.Scene == nil {
		return controller.Frame{}
	}
	return controller.Frame{
		Index:     g.Scene.Frame,
		Context:   g.Scene.Context,
		Suspended: g.Scene.Paused,
	}
}

// CameraPose implements controller.PoseSource.
func (v *Viewpoints) CameraPose() pose.Pose {
	if v.Camera == nil {
		return pose.Identity()
	}
	return PoseOf(v.Camera)
}

// PlayerPose implements controller.PoseSource.
func (v *Viewpoints) PlayerPose() (pose.Pose, bool) {
	if v.Player == nil {
		return pose.Pose{}, false
	}
	return PoseOf(v.Player), true
}

// ActiveMode implements controller.ModeProvider.
func (v *Viewpoints) ActiveMode() pose.ControllerMode {
	return v.Mode
}

// SceneName implements controller.SceneNamer.
func (v *Viewpoints) SceneName() string {
	g := v.GetGameObject()
	if g == nil || g.Scene == nil {
		return ""
	}
	return g.Scene.Name
}

func (v *Viewpoints) HasCamera() bool {
	return v.Camera != nil
}

func (v *Viewpoints) HasPlayer() bool {
	return v.Player != nil
}

func (v *Viewpoints) SetCameraPose(p pose.Pose) {
	Teleport(v.Camera, p)
}

func (v *Viewpoints) SetPlayerPose(p pose.Pose) {
	Teleport(v.Player, p)
}

// SetControllerEnabled switches the player's CharacterController, if it has one.
func (v *Viewpoints) SetControllerEnabled(enabled bool) {
	if v.Player == nil {
		return
	}
	if cc := engine.GetComponent[*CharacterController](v.Player); cc != nil {
		cc.SetEnabled(enabled)
	}
}

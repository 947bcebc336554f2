package components

import (
	"viewmark/internal/camera"
	"viewmark/internal/engine"
	"viewmark/internal/pose"
)

// FlyCamera drives its GameObject with a free flying camera while enabled.
type FlyCamera struct {
	engine.BaseComponent
	Fly     *camera.Fly
	Enabled bool
	// ReadInput is swapped out in tests; it defaults to camera.ReadInput.
	ReadInput func() camera.Input
}

func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Enabled:   true,
		ReadInput: camera.ReadInput,
	}
}

func (f *FlyCamera) Start() {
	g := f.GetGameObject()
	if g == nil || f.Fly != nil {
		return
	}
	f.Fly = camera.New(g.WorldPosition())
	f.Fly.SetPose(PoseOf(g))
}

func (f *FlyCamera) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.Fly == nil || !f.Enabled {
		return
	}
	f.Fly.Step(f.ReadInput(), deltaTime)
	p := f.Fly.Pose()
	g.SetWorldPose(p.Position, p.Rotation)
}

// OnTeleport implements Teleportable.
func (f *FlyCamera) OnTeleport(p pose.Pose) {
	if f.Fly != nil {
		f.Fly.SetPose(p)
	}
}

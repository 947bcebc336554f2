package components

import (
	"viewmark/internal/engine"
	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera keeps its GameObject behind and above Target, facing the
// target's look direction. This is the third-person rig.
type FollowCamera struct {
	engine.BaseComponent
	Target   *engine.GameObject
	Distance float32
	Height   float32
	Enabled  bool
}

func NewFollowCamera(target *engine.GameObject) *FollowCamera {
	return &FollowCamera{
		Target:   target,
		Distance: 4.0,
		Height:   2.0,
		Enabled:  true,
	}
}

func (f *FollowCamera) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.Target == nil || !f.Enabled {
		return
	}
	targetPose := PoseOf(f.Target)
	yaw, pitch := targetPose.YawPitch()
	back := rl.Vector3Scale(pose.LookDirection(yaw, 0), -f.Distance)
	pos := rl.Vector3Add(targetPose.Position, back)
	pos.Y += f.Height
	p := pose.FromYawPitch(pos, yaw, pitch)
	g.SetWorldPose(p.Position, p.Rotation)
}

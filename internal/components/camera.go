package components

import (
	"viewmark/internal/engine"
	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Teleportable is implemented by components that keep their own copy of the
// pose (angles, velocity) and must resync when the object is moved directly.
type Teleportable interface {
	OnTeleport(p pose.Pose)
}

// Teleport moves g to p and lets its components resync.
func Teleport(g *engine.GameObject, p pose.Pose) {
	g.SetWorldPose(p.Position, p.Rotation)
	for _, c := range g.Components() {
		if t, ok := c.(Teleportable); ok {
			t.OnTeleport(p)
		}
	}
}

// PoseOf reads the world pose of g.
func PoseOf(g *engine.GameObject) pose.Pose {
	return pose.New(g.WorldPosition(), g.WorldRotation())
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	forward := rl.Vector3RotateByQuaternion(pose.Forward, g.WorldRotation())

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

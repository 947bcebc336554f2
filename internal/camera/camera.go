package camera

import (
	"math"

	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fly is a free camera with no gravity, used by the flying camera mode.
type Fly struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
}

// Input is one frame of movement and look input. Movement axes are in
// [-1, 1]; look deltas are in mouse pixels.
type Input struct {
	Forward float32
	Right   float32
	Up      float32
	LookX   float32
	LookY   float32
}

func New(pos rl.Vector3) *Fly {
	return &Fly{
		Position:  pos,
		Yaw:       -135.0,
		Pitch:     -30.0,
		MoveSpeed: 8.0, // Units per second
		LookSpeed: 0.1,
	}
}

// ReadInput polls the keyboard and mouse: WASD to move, Q/E down/up.
func ReadInput() Input {
	var in Input
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right--
	}
	if rl.IsKeyDown(rl.KeyE) {
		in.Up++
	}
	if rl.IsKeyDown(rl.KeyQ) {
		in.Up--
	}
	mouseDelta := rl.GetMouseDelta()
	in.LookX = mouseDelta.X
	in.LookY = mouseDelta.Y
	return in
}

func (c *Fly) Step(in Input, deltaTime float32) {
	c.Yaw += in.LookX * c.LookSpeed
	c.Pitch -= in.LookY * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	forward, right := c.getDirections()
	move := rl.Vector3{
		X: forward.X*in.Forward + right.X*in.Right,
		Y: in.Up,
		Z: forward.Z*in.Forward + right.Z*in.Right,
	}

	// Normalize diagonal movement so you don't go faster diagonally
	moveLen := float32(math.Sqrt(float64(move.X*move.X + move.Y*move.Y + move.Z*move.Z)))
	if moveLen > 0 {
		move = rl.Vector3Scale(move, c.MoveSpeed*deltaTime/moveLen)
		c.Position = rl.Vector3Add(c.Position, move)
	}
}

// getDirections returns horizontal forward and right vectors.
func (c *Fly) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (c *Fly) Pose() pose.Pose {
	return pose.FromYawPitch(c.Position, c.Yaw, c.Pitch)
}

func (c *Fly) SetPose(p pose.Pose) {
	c.Position = p.Position
	c.Yaw, c.Pitch = p.YawPitch()
}

func (c *Fly) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, pose.LookDirection(c.Yaw, c.Pitch)),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

package components

import (
	"math"

	"viewmark/internal/engine"
	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController provides first-person controls with WASD movement and mouse
// look. Movement goes through the CharacterController on the same object.
type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32
	JumpStrength float32
	EyeHeight    float32
	Enabled      bool
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          -135.0,
		Pitch:        -30.0,
		MoveSpeed:    8.0,
		LookSpeed:    0.1,
		JumpStrength: 8.0,
		EyeHeight:    1.6,
		Enabled:      true,
	}
}

func (f *FPSController) Start() {
	f.syncRotation()
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || !f.Enabled {
		return
	}

	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Yaw += mouseDelta.X * f.LookSpeed
	f.Pitch -= mouseDelta.Y * f.LookSpeed

	// Clamp pitch
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}
	f.syncRotation()

	cc := engine.GetComponent[*CharacterController](g)
	if cc == nil {
		return
	}

	yawRad := float64(f.Yaw) * math.Pi / 180
	forward := rl.Vector3{X: float32(math.Cos(yawRad)), Z: float32(math.Sin(yawRad))}
	right := rl.Vector3{X: float32(-math.Sin(yawRad)), Z: float32(math.Cos(yawRad))}

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}

	// Normalize diagonal movement
	if rl.Vector3Length(moveDir) > 0 {
		moveDir = rl.Vector3Scale(rl.Vector3Normalize(moveDir), f.MoveSpeed*deltaTime)
		cc.Move(moveDir)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		cc.Jump(f.JumpStrength)
	}
}

// EyePose is where a first-person camera should sit.
func (f *FPSController) EyePose() pose.Pose {
	g := f.GetGameObject()
	if g == nil {
		return pose.Identity()
	}
	eye := g.WorldPosition()
	eye.Y += f.EyeHeight
	return pose.FromYawPitch(eye, f.Yaw, f.Pitch)
}

// OnTeleport implements Teleportable.
func (f *FPSController) OnTeleport(p pose.Pose) {
	f.Yaw, f.Pitch = p.YawPitch()
}

func (f *FPSController) syncRotation() {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation = pose.FromYawPitch(rl.Vector3{}, f.Yaw, f.Pitch).Rotation
}

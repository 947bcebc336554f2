package pose

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is where an entity is and which way it faces.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

// New returns a pose at pos facing rot.
func New(pos rl.Vector3, rot rl.Quaternion) Pose {
	return Pose{Position: pos, Rotation: rot}
}

// Identity returns a pose at the origin with no rotation.
func Identity() Pose {
	return Pose{Rotation: rl.QuaternionIdentity()}
}

// Forward is the look direction at yaw 0, pitch 0.
var Forward = rl.Vector3{X: 1}

// LookDirection converts camera angles in degrees to a unit direction, using
// the convention of the FPS controllers: yaw turns in the XZ plane, pitch
// raises toward +Y.
func LookDirection(yaw, pitch float32) rl.Vector3 {
	yawRad := float64(yaw) * math.Pi / 180
	pitchRad := float64(pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// FromYawPitch builds a pose whose rotation turns Forward into LookDirection(yaw, pitch).
func FromYawPitch(pos rl.Vector3, yaw, pitch float32) Pose {
	qPitch := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, pitch*rl.Deg2rad)
	qYaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, -yaw*rl.Deg2rad)
	return Pose{Position: pos, Rotation: rl.QuaternionMultiply(qYaw, qPitch)}
}

// YawPitch recovers camera angles in degrees from the rotation. Roll is dropped.
func (p Pose) YawPitch() (yaw, pitch float32) {
	f := rl.Vector3RotateByQuaternion(Forward, p.Normalized().Rotation)
	y := math.Max(-1, math.Min(1, float64(f.Y)))
	pitch = float32(math.Asin(y) * 180 / math.Pi)
	yaw = float32(math.Atan2(float64(f.Z), float64(f.X)) * 180 / math.Pi)
	return yaw, pitch
}

// IsFinite reports whether every component is a finite number.
func (p Pose) IsFinite() bool {
	for _, v := range []float32{
		p.Position.X, p.Position.Y, p.Position.Z,
		p.Rotation.X, p.Rotation.Y, p.Rotation.Z, p.Rotation.W,
	} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Normalized returns a copy with a unit rotation. Zero-length or non-finite
// rotations are replaced by identity so a bad capture can still be restored.
func (p Pose) Normalized() Pose {
	q := p.Rotation
	lenSq := float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if lenSq == 0 || math.IsNaN(lenSq) || math.IsInf(lenSq, 0) {
		p.Rotation = rl.QuaternionIdentity()
		return p
	}
	p.Rotation = rl.QuaternionNormalize(q)
	return p
}

// WithHeight returns a copy with the vertical coordinate replaced.
func (p Pose) WithHeight(y float32) Pose {
	p.Position.Y = y
	return p
}

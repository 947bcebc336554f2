package pose

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestFromYawPitchMatchesLookDirection(t *testing.T) {
	cases := []struct{ yaw, pitch float32 }{
		{0, 0}, {90, 0}, {-90, 0}, {45, 30}, {170, -60}, {-135, 10},
	}
	for _, c := range cases {
		p := FromYawPitch(rl.Vector3{}, c.yaw, c.pitch)
		got := rl.Vector3RotateByQuaternion(Forward, p.Rotation)
		want := LookDirection(c.yaw, c.pitch)
		if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Z, want.Z) {
			t.Errorf("yaw %v pitch %v: forward %v, want %v", c.yaw, c.pitch, got, want)
		}
	}
}

func TestYawPitchRoundTrip(t *testing.T) {
	for _, c := range []struct{ yaw, pitch float32 }{{0, 0}, {30, 20}, {-120, -45}, {179, 80}} {
		yaw, pitch := FromYawPitch(rl.Vector3{X: 1, Y: 2, Z: 3}, c.yaw, c.pitch).YawPitch()
		if !approx(yaw, c.yaw) || !approx(pitch, c.pitch) {
			t.Errorf("round trip (%v, %v) gave (%v, %v)", c.yaw, c.pitch, yaw, pitch)
		}
	}
}

func TestNormalized(t *testing.T) {
	p := New(rl.Vector3{X: 5}, rl.Quaternion{W: 2})
	n := p.Normalized()
	if n.Rotation != (rl.Quaternion{W: 1}) {
		t.Errorf("Expected unit rotation, got %v", n.Rotation)
	}
	if n.Position != p.Position {
		t.Error("Normalized changed position")
	}

	zero := Pose{}.Normalized()
	if zero.Rotation != rl.QuaternionIdentity() {
		t.Errorf("Zero rotation should become identity, got %v", zero.Rotation)
	}

	nan := float32(math.NaN())
	bad := New(rl.Vector3{}, rl.Quaternion{X: nan, W: 1}).Normalized()
	if bad.Rotation != rl.QuaternionIdentity() {
		t.Errorf("NaN rotation should become identity, got %v", bad.Rotation)
	}
}

func TestIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("Identity should be finite")
	}
	inf := float32(math.Inf(1))
	if New(rl.Vector3{Y: inf}, rl.QuaternionIdentity()).IsFinite() {
		t.Error("Infinite position reported finite")
	}
}

func TestWithHeight(t *testing.T) {
	p := New(rl.Vector3{X: 1, Y: 7, Z: 3}, rl.QuaternionIdentity())
	h := p.WithHeight(1.8)
	if h.Position != (rl.Vector3{X: 1, Y: 1.8, Z: 3}) {
		t.Errorf("Unexpected position %v", h.Position)
	}
	if p.Position.Y != 7 {
		t.Error("WithHeight mutated the receiver")
	}
}

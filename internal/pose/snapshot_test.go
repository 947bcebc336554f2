package pose

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSnapshotCopiesPlayer(t *testing.T) {
	cam := New(rl.Vector3{X: 1}, rl.QuaternionIdentity())
	player := New(rl.Vector3{Z: 2}, rl.QuaternionIdentity())

	snap := NewSnapshot(cam, &player, FirstPerson, "Arena")
	player.Position.Z = 99

	got, ok := snap.PlayerPose()
	if !ok {
		t.Fatal("Expected player pose")
	}
	if got.Position.Z != 2 {
		t.Errorf("Snapshot shares player pose with caller: z=%v", got.Position.Z)
	}
	if snap.CameraPose() != cam {
		t.Error("Camera pose not kept")
	}
	if snap.Mode() != FirstPerson || snap.SceneName() != "Arena" {
		t.Errorf("Unexpected mode/scene %v/%q", snap.Mode(), snap.SceneName())
	}
}

func TestSnapshotWithoutPlayer(t *testing.T) {
	snap := NewSnapshot(Identity(), nil, FlyingCamera, "")
	if _, ok := snap.PlayerPose(); ok {
		t.Error("Expected no player pose")
	}
	if snap.SceneName() != DefaultSceneName {
		t.Errorf("Expected default scene name, got %q", snap.SceneName())
	}
	if snap.IsZero() {
		t.Error("Captured snapshot reported zero")
	}
	if !(Snapshot{}).IsZero() {
		t.Error("Zero snapshot not reported zero")
	}
}

func TestParseControllerMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseControllerMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseControllerMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseControllerMode(" flyingcamera "); err != nil || got != FlyingCamera {
		t.Errorf("Case-insensitive parse failed: %v, %v", got, err)
	}
	if _, err := ParseControllerMode("Orbit"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

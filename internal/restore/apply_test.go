package restore

import (
	"errors"
	"testing"

	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	hasCamera, hasPlayer bool
	calls                []string
	camera, player       pose.Pose
}

func (s *fakeSink) HasCamera() bool { return s.hasCamera }
func (s *fakeSink) HasPlayer() bool { return s.hasPlayer }

func (s *fakeSink) SetCameraPose(p pose.Pose) {
	s.camera = p
	s.calls = append(s.calls, "camera")
}

func (s *fakeSink) SetPlayerPose(p pose.Pose) {
	s.player = p
	s.calls = append(s.calls, "player")
}

func (s *fakeSink) SetControllerEnabled(enabled bool) {
	if enabled {
		s.calls = append(s.calls, "enable")
	} else {
		s.calls = append(s.calls, "disable")
	}
}

func TestApplyTogglesAroundPlayerWrite(t *testing.T) {
	sink := &fakeSink{hasCamera: true, hasPlayer: true}
	app := Application{Camera: ptr(camPose), Player: ptr(playerPose), ToggleController: true}

	res, err := Apply(app, sink)
	require.NoError(t, err)
	assert.Equal(t, Result{CameraApplied: true, PlayerApplied: true}, res)
	assert.Equal(t, []string{"disable", "camera", "player", "enable"}, sink.calls)
}

func TestApplyNormalizesRotation(t *testing.T) {
	sink := &fakeSink{hasCamera: true}
	p := pose.New(rl.Vector3{}, rl.Quaternion{W: 4})

	_, err := Apply(Application{Camera: &p}, sink)
	require.NoError(t, err)
	assert.Equal(t, rl.Quaternion{W: 1}, sink.camera.Rotation)
}

func TestApplyMissingCameraWritesNothing(t *testing.T) {
	sink := &fakeSink{hasPlayer: true}
	app := Application{Camera: ptr(camPose), Player: ptr(playerPose), ToggleController: true}

	res, err := Apply(app, sink)
	assert.True(t, errors.Is(err, ErrMissingReference))
	assert.Equal(t, Result{}, res)
	assert.Empty(t, sink.calls)
}

func TestApplyMissingPlayerStillMovesCamera(t *testing.T) {
	sink := &fakeSink{hasCamera: true}
	app := Application{Camera: ptr(camPose), Player: ptr(playerPose), ToggleController: true}

	res, err := Apply(app, sink)
	var w *MissingReferenceWarning
	require.True(t, errors.As(err, &w))
	assert.Equal(t, "player", w.Ref)
	assert.Equal(t, Result{CameraApplied: true}, res)
	assert.Equal(t, []string{"camera"}, sink.calls, "no controller toggle without a player write")
}

func TestApplyPlayerMissingFromSnapshot(t *testing.T) {
	sink := &fakeSink{hasCamera: true, hasPlayer: true}
	res, err := Apply(Application{Camera: ptr(camPose), PlayerMissing: true}, sink)

	assert.True(t, errors.Is(err, ErrMissingReference))
	assert.Equal(t, Result{CameraApplied: true}, res)
}

func TestApplyPlayerOnly(t *testing.T) {
	sink := &fakeSink{hasPlayer: true}
	res, err := Apply(Application{Player: ptr(playerPose)}, sink)
	require.NoError(t, err)
	assert.Equal(t, Result{PlayerApplied: true}, res)
	assert.Equal(t, playerPose.Position, sink.player.Position)
}

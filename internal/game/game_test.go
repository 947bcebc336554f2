package game

import (
	"path/filepath"
	"testing"

	"viewmark/internal/bookmark"
	"viewmark/internal/config"
	"viewmark/internal/engine"
	"viewmark/internal/pose"
	"viewmark/internal/restore"
	"viewmark/internal/storage/file"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, mode pose.ControllerMode, tracking bool, seed func(*file.Backend)) (*Game, *file.Backend) {
	t.Helper()
	backend := file.New(config.FileConfig{Dir: t.TempDir()})
	require.NoError(t, backend.Init())
	if seed != nil {
		seed(backend)
	}

	g, err := New(Options{
		Logger:      zerolog.Nop(),
		Backend:     backend,
		Collection:  "default",
		TrackingKey: "main",
		Tracking:    tracking,
		Policy:      restore.NewPolicy(),
		Mode:        mode,
		PrefsPath:   filepath.Join(t.TempDir(), "prefs.json"),
	})
	require.NoError(t, err)
	g.hud.now = func() float64 { return 0 }
	return g, backend
}

func TestNewBuildsRig(t *testing.T) {
	g, _ := newTestGame(t, pose.FirstPerson, false, nil)

	assert.NotNil(t, g.Scene.FindByName("Player"))
	assert.NotNil(t, g.Scene.FindByName("Main Camera"))
	assert.Len(t, g.Scene.FindByTag("camera"), 1)
	assert.Same(t, g.Player, g.Viewpoints.Player)
	assert.Same(t, g.Camera, g.Viewpoints.Camera)
}

func TestApplyModeEnablesRig(t *testing.T) {
	g, _ := newTestGame(t, pose.FirstPerson, false, nil)

	cases := []struct {
		mode             pose.ControllerMode
		fps, follow, fly bool
	}{
		{pose.FirstPerson, true, false, false},
		{pose.ThirdPerson, true, true, false},
		{pose.FlyingCamera, false, false, true},
		{pose.Custom, false, false, false},
	}
	for _, tc := range cases {
		g.SetMode(tc.mode)
		assert.Equal(t, tc.mode, g.Mode())
		assert.Equal(t, tc.mode, g.Viewpoints.ActiveMode())
		assert.Equal(t, tc.fps, g.fps.Enabled, "fps in %v", tc.mode)
		assert.Equal(t, tc.follow, g.follow.Enabled, "follow in %v", tc.mode)
		assert.Equal(t, tc.fly, g.fly.Enabled, "fly in %v", tc.mode)
	}

	g.SetMode(pose.SceneViewEditor)
	assert.Equal(t, pose.Custom, g.Mode(), "scene view is a context, not a mode")
}

func TestEditorContextFreesSceneCamera(t *testing.T) {
	g, _ := newTestGame(t, pose.ThirdPerson, false, nil)
	g.SetEditor(true)

	assert.Equal(t, pose.ContextEditor, g.Scene.Context)
	assert.True(t, g.fly.Enabled)
	assert.False(t, g.fps.Enabled)
	assert.False(t, g.follow.Enabled)

	g.SetEditor(false)
	assert.True(t, g.follow.Enabled)
}

func TestStartResumesTrackedPose(t *testing.T) {
	saved := pose.FromYawPitch(rl.Vector3{X: -6, Y: 3, Z: 2}, 30, -10)
	g, _ := newTestGame(t, pose.FlyingCamera, true, func(b *file.Backend) {
		var st bookmark.TrackingState
		st.Update(pose.NewSnapshot(saved, nil, pose.FlyingCamera, "Viewpoint Range"))
		require.NoError(t, b.SaveTracking("main", st))
	})

	g.Start()

	assert.Equal(t, saved.Position, g.Camera.Transform.Position)
	assert.InDelta(t, 30, g.fly.Fly.Yaw, 1e-3)
	assert.False(t, g.Viewpoints.Controller.Tracking().Captured)
	assert.Equal(t, "Restored tracking", g.hud.status)
}

func TestShutdownSavesTracking(t *testing.T) {
	g, backend := newTestGame(t, pose.FlyingCamera, true, nil)
	g.Start()
	g.Viewpoints.Controller.Tracking().Update(g.Viewpoints.Controller.Capture(pose.ContextPlay))

	g.Shutdown()

	st, ok, err := backend.LoadTracking("main")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, st.Captured)
	assert.Equal(t, g.Camera.Transform.Position, st.Last.CameraPose().Position)
}

func TestBookmarksLoadedFromBackend(t *testing.T) {
	g, _ := newTestGame(t, pose.FlyingCamera, false, func(b *file.Backend) {
		s := bookmark.NewStore()
		require.NoError(t, s.Add("gate", pose.NewSnapshot(pose.Identity(), nil, pose.FlyingCamera, "")))
		require.NoError(t, b.SaveCollection("default", s))
	})

	assert.Equal(t, []string{"gate"}, g.Viewpoints.Controller.Store().Names())
}

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	missing, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Nil(t, missing)

	want := Prefs{WindowWidth: 1600, WindowHeight: 900, WindowX: 20, WindowY: 40, Mode: "ThirdPerson"}
	require.NoError(t, WritePrefs(path, want))

	got, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	g, _ := newTestGame(t, pose.FirstPerson, false, nil)
	g.ApplyPrefs(got)
	assert.Equal(t, pose.ThirdPerson, g.Mode())
}

func TestViewpointsObjectIsLast(t *testing.T) {
	g, _ := newTestGame(t, pose.FirstPerson, false, nil)
	last := g.Scene.GameObjects[len(g.Scene.GameObjects)-1]
	_, ok := engine.FindComponent[engine.Disabler](last)
	assert.True(t, ok, "bookmarks run after the rig has moved")
}

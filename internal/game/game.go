package game

import (
	"fmt"

	"viewmark/internal/bookmark"
	"viewmark/internal/components"
	"viewmark/internal/controller"
	"viewmark/internal/engine"
	"viewmark/internal/pose"
	"viewmark/internal/restore"
	"viewmark/internal/storage"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Options configures a Game. Backend must already be initialized.
type Options struct {
	Logger      zerolog.Logger
	Backend     storage.Backend
	Collection  string
	TrackingKey string
	Tracking    bool
	Input       controller.InputSource
	Policy      *restore.Policy
	Mode        pose.ControllerMode
	PrefsPath   string
}

// Game is the demo host: a floor with landmarks, a player rig and a camera
// that can be driven in every controller mode, with bookmarks on top.
type Game struct {
	Scene      *engine.Scene
	Player     *engine.GameObject
	Camera     *engine.GameObject
	Viewpoints *components.Viewpoints

	fps    *components.FPSController
	fly    *components.FlyCamera
	follow *components.FollowCamera
	cc     *components.CharacterController

	mode      pose.ControllerMode
	log       zerolog.Logger
	hud       *hud
	prefsPath string
}

// New loads the saved collection and tracking slot and builds the scene.
func New(opts Options) (*Game, error) {
	store, err := opts.Backend.LoadCollection(opts.Collection)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	state, found, err := opts.Backend.LoadTracking(opts.TrackingKey)
	if err != nil {
		opts.Logger.Warn().Err(err).Msg("Ignoring saved tracking state")
		state, found = bookmark.TrackingState{}, false
	}
	opts.Logger.Info().
		Str("collection", opts.Collection).
		Int("bookmarks", store.Len()).
		Bool("resume", found && state.Captured).
		Msg("Loaded viewpoints")

	g := &Game{
		Scene:     engine.NewScene("Viewpoint Range"),
		mode:      opts.Mode,
		log:       opts.Logger,
		prefsPath: opts.PrefsPath,
	}
	g.buildRig()

	host := engine.NewGameObject("Viewpoints")
	vp, err := components.NewViewpoints(g.Camera, g.Player, components.ViewpointsOptions{
		Mode:     opts.Mode,
		Tracking: opts.Tracking,
		Input:    opts.Input,
		Persist: storage.Persister{
			Backend:     opts.Backend,
			Collection:  opts.Collection,
			TrackingKey: opts.TrackingKey,
		},
		Store:  store,
		State:  &state,
		Policy: opts.Policy,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	host.AddComponent(vp)
	g.Scene.AddGameObject(host)
	g.Viewpoints = vp
	g.hud = newHUD(vp.Controller)

	g.applyMode()
	return g, nil
}

func (g *Game) buildRig() {
	g.Player = engine.NewGameObject("Player")
	g.Player.Tags = []string{"player"}
	g.Player.Transform.Position = rl.Vector3{X: 4, Z: 4}
	g.cc = components.NewCharacterController()
	g.fps = components.NewFPSController()
	g.Player.AddComponent(g.cc)
	g.Player.AddComponent(g.fps)
	g.Scene.AddGameObject(g.Player)

	g.Camera = engine.NewGameObject("Main Camera")
	g.Camera.Tags = []string{"camera"}
	g.Camera.Transform.Position = rl.Vector3{X: 10, Y: 10, Z: 10}
	cam := components.NewCamera()
	cam.IsMain = true
	g.fly = components.NewFlyCamera()
	g.follow = components.NewFollowCamera(g.Player)
	g.Camera.AddComponent(cam)
	g.Camera.AddComponent(g.fly)
	g.Camera.AddComponent(g.follow)
	g.Scene.AddGameObject(g.Camera)
}

// Mode returns the active controller mode.
func (g *Game) Mode() pose.ControllerMode {
	return g.mode
}

// SetMode switches the active rig.
func (g *Game) SetMode(m pose.ControllerMode) {
	if m == pose.SceneViewEditor || m == g.mode {
		return
	}
	g.mode = m
	g.applyMode()
	g.log.Info().Str("mode", m.String()).Msg("Controller mode changed")
}

// SetEditor moves the host between play and the editor scene view.
func (g *Game) SetEditor(editor bool) {
	if editor {
		g.Scene.Context = pose.ContextEditor
	} else {
		g.Scene.Context = pose.ContextPlay
	}
	g.applyMode()
	g.log.Info().Str("context", g.Scene.Context.String()).Msg("Execution context changed")
}

// applyMode enables the components that drive the camera and player for the
// current mode. In the editor only the scene camera moves.
func (g *Game) applyMode() {
	editor := g.Scene.Context == pose.ContextEditor
	g.fps.Enabled = !editor && (g.mode == pose.FirstPerson || g.mode == pose.ThirdPerson)
	g.follow.Enabled = !editor && g.mode == pose.ThirdPerson
	g.fly.Enabled = editor || g.mode == pose.FlyingCamera
	g.cc.UseGravity = !editor
	if g.fly.Enabled {
		g.fly.OnTeleport(components.PoseOf(g.Camera))
	}
	g.Viewpoints.Mode = g.mode
}

// Start runs component Start hooks, which resumes the tracked pose.
func (g *Game) Start() {
	g.Scene.Start()
	g.syncEye()
}

// Step advances one frame.
func (g *Game) Step(deltaTime float32) {
	g.Scene.Update(deltaTime)
	g.syncEye()
}

// syncEye pins the camera to the player's eyes in first person.
func (g *Game) syncEye() {
	if g.mode != pose.FirstPerson || g.Scene.Context != pose.ContextPlay {
		return
	}
	components.Teleport(g.Camera, g.fps.EyePose())
}

// Shutdown hands the tracking slot to storage.
func (g *Game) Shutdown() {
	g.Viewpoints.GetGameObject().SetActive(false)
}

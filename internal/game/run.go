package game

import (
	"viewmark/internal/components"
	"viewmark/internal/engine"
	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var modeKeys = map[int32]pose.ControllerMode{
	rl.KeyF2: pose.FirstPerson,
	rl.KeyF3: pose.ThirdPerson,
	rl.KeyF4: pose.FlyingCamera,
	rl.KeyF5: pose.Custom,
}

// Run opens the window and drives the game until it is closed.
func (g *Game) Run() {
	prefs, err := LoadPrefs(g.prefsPath)
	if err != nil {
		g.log.Warn().Err(err).Msg("Ignoring saved prefs")
	}
	width, height := int32(1280), int32(720)
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		width, height = int32(prefs.WindowWidth), int32(prefs.WindowHeight)
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(width, height, "viewmark")
	defer rl.CloseWindow()
	if prefs != nil && (prefs.WindowX != 0 || prefs.WindowY != 0) {
		rl.SetWindowPosition(prefs.WindowX, prefs.WindowY)
	}
	if prefs != nil {
		g.ApplyPrefs(prefs)
	}

	rl.SetTargetFPS(120)
	rl.DisableCursor()
	g.hud.init()

	g.Start()
	for !rl.WindowShouldClose() {
		g.handleHostKeys()
		g.Step(rl.GetFrameTime())
		g.Draw()
	}

	g.SavePrefs()
	g.Shutdown()
}

func (g *Game) handleHostKeys() {
	for key, mode := range modeKeys {
		if rl.IsKeyPressed(key) {
			g.SetMode(mode)
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		editor := g.Scene.Context != pose.ContextEditor
		g.SetEditor(editor)
		if editor {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.Scene.Paused = !g.Scene.Paused
	}
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Camera)
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	rl.DrawGrid(40, 1)
	for i, lm := range landmarks {
		size := rl.Vector3{X: 1, Y: lm.Y * 2, Z: 1}
		rl.DrawCubeV(lm, size, landmarkColors[i%len(landmarkColors)])
		rl.DrawCubeWiresV(lm, size, rl.Black)
	}
	if g.mode != pose.FirstPerson || g.Scene.Context == pose.ContextEditor {
		rl.DrawCylinder(g.Player.WorldPosition(), g.cc.Radius, g.cc.Radius, g.cc.Height, 12, rl.SkyBlue)
	}
	rl.EndMode3D()

	g.hud.draw(g.mode, g.Scene)
	rl.EndDrawing()
}

var landmarks = []rl.Vector3{
	{X: -8, Y: 0.5, Z: -8},
	{X: 8, Y: 1, Z: -8},
	{X: -8, Y: 1.5, Z: 8},
	{X: 8, Y: 0.5, Z: 8},
	{X: 0, Y: 1, Z: -14},
	{X: 14, Y: 1.5, Z: 0},
}

var landmarkColors = []rl.Color{rl.Maroon, rl.Orange, rl.DarkGreen, rl.Purple}

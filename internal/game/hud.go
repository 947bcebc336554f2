package game

import (
	"fmt"

	"viewmark/internal/controller"
	"viewmark/internal/engine"
	"viewmark/internal/pose"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors, dark with an indigo accent
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
	colorWarning       = rl.NewColor(250, 180, 80, 255)
	colorSelection     = rl.NewColor(108, 99, 255, 60)
)

const (
	hudWidth      = 300
	hudRowHeight  = 20
	hudMaxRows    = 12
	statusSeconds = 3.0
)

// hud lists the bookmarks and the tracking switch, and flashes the last
// restore or warning.
type hud struct {
	ctrl       *controller.Controller
	status     string
	statusWarn bool
	statusTime float64
	now        func() float64
}

func newHUD(c *controller.Controller) *hud {
	h := &hud{ctrl: c, now: rl.GetTime}
	c.OnRestored.AddListener(func(r controller.Restored) {
		h.flash(fmt.Sprintf("Restored %s", r.Name), false)
	})
	c.OnWarning.AddListener(func(err error) {
		h.flash(err.Error(), true)
	})
	return h
}

func (h *hud) flash(msg string, warn bool) {
	h.status = msg
	h.statusWarn = warn
	h.statusTime = h.now()
}

func (h *hud) init() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (h *hud) draw(mode pose.ControllerMode, scene *engine.Scene) {
	rl.DrawText("F2 first person  F3 third person  F4 fly  F5 custom", 10, 10, 18, colorTextSecondary)
	rl.DrawText("F1 editor view  P pause  Ctrl+PgUp/PgDn cycle  Ctrl+Ins add", 10, 32, 18, colorTextSecondary)
	rl.DrawFPS(10, 56)

	x := int32(rl.GetScreenWidth()) - hudWidth - 10
	y := int32(10)
	store := h.ctrl.Store()
	rows := store.Len()
	if rows > hudMaxRows {
		rows = hudMaxRows
	}
	height := int32(110 + rows*hudRowHeight)
	rl.DrawRectangle(x, y, hudWidth, height, colorBgPanel)
	rl.DrawRectangleLines(x, y, hudWidth, height, colorAccent)

	header := fmt.Sprintf("%s  |  %s", mode, scene.Context)
	if scene.Paused {
		header += "  |  paused"
	}
	rl.DrawText(header, x+10, y+10, 16, colorTextPrimary)

	tracking := gui.CheckBox(rl.Rectangle{X: float32(x + 10), Y: float32(y + 34), Width: 16, Height: 16}, "Tracking", h.ctrl.TrackingEnabled())
	if tracking != h.ctrl.TrackingEnabled() {
		h.ctrl.SetTracking(tracking)
	}

	rl.DrawText(fmt.Sprintf("Bookmarks (%d)", store.Len()), x+10, y+60, 16, colorTextSecondary)
	listY := y + 82
	names := store.Names()
	first := 0
	if sel := store.Selected(); sel >= hudMaxRows {
		first = sel - hudMaxRows + 1
	}
	for i := first; i < len(names) && i < first+hudMaxRows; i++ {
		rowY := listY + int32(i-first)*hudRowHeight
		color := colorTextMuted
		if i == store.Selected() {
			rl.DrawRectangle(x+4, rowY-2, hudWidth-8, hudRowHeight, colorSelection)
			color = colorTextPrimary
		}
		rl.DrawText(fmt.Sprintf("%2d  %s", i+1, names[i]), x+10, rowY, 14, color)
	}

	if h.status != "" && h.now()-h.statusTime < statusSeconds {
		color := colorTextSecondary
		if h.statusWarn {
			color = colorWarning
		}
		rl.DrawText(h.status, x+10, y+height-22, 14, color)
	}
}

package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefs holds window and mode preferences saved between sessions. Poses are
// not stored here; the tracking slot resumes them.
type Prefs struct {
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
	WindowX      int    `json:"windowX"`
	WindowY      int    `json:"windowY"`
	Mode         string `json:"mode"`
}

// DefaultPrefsFile is used when Options.PrefsPath is empty.
const DefaultPrefsFile = ".viewmark_prefs.json"

// LoadPrefs loads preferences from path. A missing file returns nil, nil.
func LoadPrefs(path string) (*Prefs, error) {
	if path == "" {
		path = DefaultPrefsFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return &prefs, nil
}

// WritePrefs saves prefs to path.
func WritePrefs(path string, prefs Prefs) error {
	if path == "" {
		path = DefaultPrefsFile
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// SavePrefs saves the current window and mode.
func (g *Game) SavePrefs() {
	prefs := g.prefs()
	prefs.WindowWidth = rl.GetScreenWidth()
	prefs.WindowHeight = rl.GetScreenHeight()
	prefs.WindowX = int(rl.GetWindowPosition().X)
	prefs.WindowY = int(rl.GetWindowPosition().Y)

	if err := WritePrefs(g.prefsPath, prefs); err != nil {
		g.log.Error().Err(err).Msg("Failed to save prefs")
	}
}

func (g *Game) prefs() Prefs {
	return Prefs{Mode: g.mode.String()}
}

// ApplyPrefs restores the saved mode.
func (g *Game) ApplyPrefs(prefs *Prefs) {
	if prefs == nil || prefs.Mode == "" {
		return
	}
	mode, err := pose.ParseControllerMode(prefs.Mode)
	if err != nil {
		g.log.Warn().Err(err).Msg("Ignoring saved mode")
		return
	}
	g.SetMode(mode)
}

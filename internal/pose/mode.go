package pose

import (
	"fmt"
	"strings"
)

// ControllerMode is the locomotion scheme driving the camera and player.
type ControllerMode int

const (
	FirstPerson ControllerMode = iota
	ThirdPerson
	FlyingCamera
	Custom
	// SceneViewEditor tags captures taken outside of play, from the editor's scene camera.
	SceneViewEditor
)

// Modes lists every controller mode in declaration order.
var Modes = []ControllerMode{FirstPerson, ThirdPerson, FlyingCamera, Custom, SceneViewEditor}

var modeNames = map[ControllerMode]string{
	FirstPerson:     "FirstPerson",
	ThirdPerson:     "ThirdPerson",
	FlyingCamera:    "FlyingCamera",
	Custom:          "Custom",
	SceneViewEditor: "SceneViewEditor",
}

func (m ControllerMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ControllerMode(%d)", int(m))
}

// ParseControllerMode accepts the names produced by String, case-insensitively.
func ParseControllerMode(s string) (ControllerMode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return mode, nil
		}
	}
	return FirstPerson, fmt.Errorf("unknown controller mode %q", s)
}

// ExecutionContext says whether the host is running the game or sitting in the editor.
type ExecutionContext int

const (
	ContextPlay ExecutionContext = iota
	ContextEditor
)

func (c ExecutionContext) String() string {
	if c == ContextEditor {
		return "Editor"
	}
	return "Play"
}

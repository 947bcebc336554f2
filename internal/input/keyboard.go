// Package input maps bookmark actions to raylib keys.
package input

import (
	"fmt"
	"strings"

	"viewmark/internal/controller"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyNames = map[string]int32{
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftalt":      rl.KeyLeftAlt,
	"rightalt":     rl.KeyRightAlt,
	"pageup":       rl.KeyPageUp,
	"pagedown":     rl.KeyPageDown,
	"insert":       rl.KeyInsert,
	"delete":       rl.KeyDelete,
	"home":         rl.KeyHome,
	"end":          rl.KeyEnd,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"f1":           rl.KeyF1,
	"f2":           rl.KeyF2,
	"f3":           rl.KeyF3,
	"f4":           rl.KeyF4,
	"f5":           rl.KeyF5,
	"f6":           rl.KeyF6,
	"f7":           rl.KeyF7,
	"f8":           rl.KeyF8,
	"f9":           rl.KeyF9,
	"f10":          rl.KeyF10,
	"f11":          rl.KeyF11,
	"f12":          rl.KeyF12,
	"none":         rl.KeyNull,
}

// ParseKey resolves a key name such as "PageDown" or "B". Single letters and
// digits map to their raylib key codes.
func ParseKey(name string) (int32, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), nil
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Bindings maps the primary modifier and each action to a key code. A primary
// of KeyNull means no modifier is required.
type Bindings struct {
	Primary int32
	Actions map[controller.Action]int32
}

// DefaultBindings holds Ctrl plus the navigation cluster.
func DefaultBindings() Bindings {
	return Bindings{
		Primary: rl.KeyLeftControl,
		Actions: map[controller.Action]int32{
			controller.ActionNext:           rl.KeyPageDown,
			controller.ActionPrevious:       rl.KeyPageUp,
			controller.ActionAdd:            rl.KeyInsert,
			controller.ActionOverride:       rl.KeyHome,
			controller.ActionRemove:         rl.KeyDelete,
			controller.ActionToggleTracking: rl.KeyEnd,
		},
	}
}

// ParseBindings builds bindings from key names keyed by action name
// (next, previous, add, override, remove, toggleTracking). Missing actions
// keep their defaults.
func ParseBindings(primary string, actions map[string]string) (Bindings, error) {
	b := DefaultBindings()
	if primary != "" {
		k, err := ParseKey(primary)
		if err != nil {
			return b, fmt.Errorf("primary binding: %w", err)
		}
		b.Primary = k
	}
	for _, a := range []controller.Action{
		controller.ActionNext,
		controller.ActionPrevious,
		controller.ActionAdd,
		controller.ActionOverride,
		controller.ActionRemove,
		controller.ActionToggleTracking,
	} {
		name, ok := actions[a.String()]
		if !ok || name == "" {
			continue
		}
		k, err := ParseKey(name)
		if err != nil {
			return b, fmt.Errorf("%s binding: %w", a, err)
		}
		b.Actions[a] = k
	}
	return b, nil
}

// KeyState reports key state; raylib's IsKeyDown/IsKeyPressed in production.
type KeyState interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) IsKeyDown(key int32) bool    { return rl.IsKeyDown(key) }
func (raylibKeys) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

// Keyboard implements controller.InputSource.
type Keyboard struct {
	Bindings Bindings
	keys     KeyState
}

func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{Bindings: b, keys: raylibKeys{}}
}

// NewKeyboardWith reads keys from ks instead of the window.
func NewKeyboardWith(b Bindings, ks KeyState) *Keyboard {
	return &Keyboard{Bindings: b, keys: ks}
}

func (k *Keyboard) PrimaryHeld() bool {
	if k.Bindings.Primary == rl.KeyNull {
		return true
	}
	return k.keys.IsKeyDown(k.Bindings.Primary)
}

func (k *Keyboard) Pressed(a controller.Action) bool {
	key, ok := k.Bindings.Actions[a]
	if !ok || key == rl.KeyNull {
		return false
	}
	return k.keys.IsKeyPressed(key)
}

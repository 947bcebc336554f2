package input

import (
	"testing"

	"viewmark/internal/controller"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeys struct {
	down    map[int32]bool
	pressed map[int32]bool
}

func (f fakeKeys) IsKeyDown(key int32) bool    { return f.down[key] }
func (f fakeKeys) IsKeyPressed(key int32) bool { return f.pressed[key] }

func TestParseKey(t *testing.T) {
	cases := map[string]int32{
		"PageDown":    rl.KeyPageDown,
		"leftcontrol": rl.KeyLeftControl,
		" F3 ":        rl.KeyF3,
		"b":           rl.KeyB,
		"7":           rl.KeySeven,
		"None":        rl.KeyNull,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("Hyper")
	assert.Error(t, err)
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings("RightShift", map[string]string{"next": "N", "add": ""})
	require.NoError(t, err)
	assert.Equal(t, int32(rl.KeyRightShift), b.Primary)
	assert.Equal(t, int32(rl.KeyN), b.Actions[controller.ActionNext])
	assert.Equal(t, int32(rl.KeyInsert), b.Actions[controller.ActionAdd], "empty names keep the default")

	_, err = ParseBindings("", map[string]string{"remove": "Nope"})
	assert.Error(t, err)
}

func TestKeyboardNeedsPrimary(t *testing.T) {
	ks := fakeKeys{down: map[int32]bool{}, pressed: map[int32]bool{rl.KeyPageDown: true}}
	k := NewKeyboardWith(DefaultBindings(), ks)

	assert.False(t, k.PrimaryHeld())
	assert.True(t, k.Pressed(controller.ActionNext))
	assert.False(t, k.Pressed(controller.ActionPrevious))

	ks.down[rl.KeyLeftControl] = true
	assert.True(t, k.PrimaryHeld())
}

func TestKeyboardWithoutModifier(t *testing.T) {
	b := DefaultBindings()
	b.Primary = rl.KeyNull
	b.Actions[controller.ActionRemove] = rl.KeyNull

	ks := fakeKeys{pressed: map[int32]bool{rl.KeyNull: true}}
	k := NewKeyboardWith(b, ks)

	assert.True(t, k.PrimaryHeld())
	assert.False(t, k.Pressed(controller.ActionRemove), "unbound actions never fire")
}

package bookmark

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapAt(x float32) pose.Snapshot {
	return pose.NewSnapshot(pose.New(rl.Vector3{X: x}, rl.QuaternionIdentity()), nil, pose.FlyingCamera, "Test")
}

func filled(t *testing.T, names ...string) *Store {
	t.Helper()
	s := NewStore()
	for i, n := range names {
		require.NoError(t, s.Add(n, snapAt(float32(i))))
	}
	return s
}

func TestNewStoreIsEmpty(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, NoSelection, s.Selected())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestAddRejectsDuplicate(t *testing.T) {
	s := filled(t, "a", "b")
	err := s.Add("a", snapAt(9))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateName))
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "a", dup.Name)
	assert.Equal(t, []string{"a", "b"}, s.Names())

	e, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, snapAt(0), e.Snapshot)
}

func TestAddLeavesSelection(t *testing.T) {
	s := filled(t, "a")
	require.NoError(t, s.Select(0))
	require.NoError(t, s.Add("b", snapAt(1)))
	assert.Equal(t, 0, s.Selected())
}

func TestCycleWraps(t *testing.T) {
	s := filled(t, "a", "b", "c")

	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, s.CycleNext())
	}
	assert.Equal(t, []int{0, 1, 2, 0}, got)

	got = got[:0]
	for i := 0; i < 4; i++ {
		got = append(got, s.CyclePrevious())
	}
	assert.Equal(t, []int{2, 1, 0, 2}, got)
}

func TestCyclePreviousFromNoSelection(t *testing.T) {
	s := filled(t, "a", "b", "c")
	assert.Equal(t, 2, s.CyclePrevious())
}

func TestCycleEmptyStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, NoSelection, s.CycleNext())
	assert.Equal(t, NoSelection, s.CyclePrevious())
}

func TestOverride(t *testing.T) {
	s := filled(t, "a", "b")
	require.NoError(t, s.Override(1, snapAt(42)))

	e, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, "b", e.Name)
	assert.Equal(t, snapAt(42), e.Snapshot)

	err = s.Override(5, snapAt(1))
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	err = s.Override(NoSelection, snapAt(1))
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestRemoveSelectedLast(t *testing.T) {
	s := filled(t, "a", "b", "c")
	require.NoError(t, s.Select(2))
	require.NoError(t, s.RemoveAt(2))

	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestRemoveOnlyEntry(t *testing.T) {
	s := filled(t, "a")
	require.NoError(t, s.Select(0))
	require.NoError(t, s.RemoveAt(0))

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, NoSelection, s.Selected())
}

func TestRemoveBeforeSelectionKeepsBookmark(t *testing.T) {
	s := filled(t, "a", "b", "c")
	require.NoError(t, s.Select(2))
	require.NoError(t, s.RemoveAt(0))

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "c", cur.Name)
}

func TestRemoveAfterSelection(t *testing.T) {
	s := filled(t, "a", "b", "c")
	require.NoError(t, s.Select(0))
	require.NoError(t, s.RemoveAt(1))
	assert.Equal(t, 0, s.Selected())
}

func TestRemoveOutOfRange(t *testing.T) {
	s := filled(t, "a")
	err := s.RemoveAt(3)

	var oor *IndexOutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 3, oor.Index)
	assert.Equal(t, 1, oor.Len)
	assert.Equal(t, 1, s.Len())
}

func TestSelect(t *testing.T) {
	s := filled(t, "a", "b")
	require.NoError(t, s.Select(1))
	assert.Equal(t, 1, s.Selected())
	require.NoError(t, s.Select(NoSelection))
	assert.Equal(t, NoSelection, s.Selected())
	assert.Error(t, s.Select(2))
}

func TestClear(t *testing.T) {
	s := filled(t, "a", "b")
	require.NoError(t, s.Select(1))
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, NoSelection, s.Selected())
}

func TestNamesReturnsCopy(t *testing.T) {
	s := filled(t, "a")
	names := s.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"a"}, s.Names())
}

func TestNewStoreFromEntries(t *testing.T) {
	entries := []Entry{{Name: "a", Snapshot: snapAt(0)}, {Name: "b", Snapshot: snapAt(1)}}

	s, err := NewStoreFromEntries(entries, 1)
	require.NoError(t, err)
	assert.Equal(t, entries, s.Entries())
	assert.Equal(t, 1, s.Selected())

	s, err = NewStoreFromEntries(entries, 7)
	require.NoError(t, err)
	assert.Equal(t, NoSelection, s.Selected())

	_, err = NewStoreFromEntries(append(entries, Entry{Name: "a"}), 0)
	assert.True(t, errors.Is(err, ErrDuplicateName))
}

// Random operation sequences must never break the store's invariants.
func TestStoreInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewStore()

	for step := 0; step < 5000; step++ {
		switch rng.Intn(6) {
		case 0, 1:
			s.Add(fmt.Sprintf("b%d", rng.Intn(20)), snapAt(float32(step)))
		case 2:
			s.RemoveAt(rng.Intn(s.Len() + 1))
		case 3:
			s.CycleNext()
		case 4:
			s.CyclePrevious()
		case 5:
			s.Override(s.Selected(), snapAt(float32(step)))
		}

		require.Equal(t, len(s.names), len(s.snapshots), "step %d", step)
		sel := s.Selected()
		if s.Len() == 0 {
			require.Equal(t, NoSelection, sel, "step %d", step)
		} else {
			require.True(t, sel >= NoSelection && sel < s.Len(), "step %d: selected %d of %d", step, sel, s.Len())
		}
		seen := map[string]bool{}
		for _, n := range s.Names() {
			require.False(t, seen[n], "step %d: duplicate %q", step, n)
			seen[n] = true
		}
	}
}

package bookmark

import "viewmark/internal/pose"

// TrackingState is the live snapshot overwritten every tracked frame.
type TrackingState struct {
	Last     pose.Snapshot
	Captured bool
}

// Update overwrites the live snapshot.
func (t *TrackingState) Update(snap pose.Snapshot) {
	t.Last = snap
	t.Captured = true
}

// Consume hands out the live snapshot once. The snapshot stays in place for
// the next overwrite; only the captured flag is cleared.
func (t *TrackingState) Consume() (pose.Snapshot, bool) {
	if !t.Captured {
		return pose.Snapshot{}, false
	}
	t.Captured = false
	return t.Last, true
}

// Rearm marks the last snapshot as captured again so a consumed resume pose
// survives a session that tracked no frames. It reports false when nothing
// was ever recorded.
func (t *TrackingState) Rearm() bool {
	if t.Last == (pose.Snapshot{}) {
		return false
	}
	t.Captured = true
	return true
}

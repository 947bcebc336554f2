package pose

// DefaultSceneName is recorded when a capture has no scene context.
const DefaultSceneName = "Untitled"

// Snapshot is a captured camera pose, an optional player pose and the
// context they were taken in. Fields are unexported so a snapshot cannot be
// changed after capture; copies never share the player pose.
type Snapshot struct {
	camera    Pose
	player    Pose
	hasPlayer bool
	mode      ControllerMode
	scene     string
}

// NewSnapshot captures camera and, when non-nil, player. An empty scene name
// is replaced by DefaultSceneName.
func NewSnapshot(camera Pose, player *Pose, mode ControllerMode, scene string) Snapshot {
	if scene == "" {
		scene = DefaultSceneName
	}
	s := Snapshot{camera: camera, mode: mode, scene: scene}
	if player != nil {
		s.player = *player
		s.hasPlayer = true
	}
	return s
}

func (s Snapshot) CameraPose() Pose { return s.camera }

// PlayerPose returns the player pose and whether one was captured.
func (s Snapshot) PlayerPose() (Pose, bool) {
	return s.player, s.hasPlayer
}

func (s Snapshot) Mode() ControllerMode { return s.mode }

func (s Snapshot) SceneName() string { return s.scene }

// IsZero reports whether s is the zero Snapshot, which NewSnapshot never returns.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// Package controller drives bookmark cycling, capture and restore from
// per-frame input, and keeps the live tracking snapshot current.
package controller

import (
	"errors"
	"fmt"

	"viewmark/internal/bookmark"
	"viewmark/internal/engine"
	"viewmark/internal/pose"
	"viewmark/internal/restore"

	"github.com/rs/zerolog"
)

// TrackingName labels restores that come from the tracking slot.
const TrackingName = "tracking"

// Dependencies are the collaborators a Controller is built from. Source,
// Sink and Modes are required; the rest are optional. A nil Policy means
// restore.NewPolicy().
type Dependencies struct {
	Source   PoseSource
	Sink     PoseSink
	Modes    ModeProvider
	Input    InputSource
	Scenes   SceneNamer
	Persist  Persister
	Store    *bookmark.Store
	Tracking *bookmark.TrackingState
	Policy   *restore.Policy
	Logger   zerolog.Logger
}

// Restored is passed to OnRestored after every restore.
type Restored struct {
	Name   string
	Result restore.Result
}

// Controller owns one bookmark store and one tracking slot for a camera and
// player pairing. It is driven from a single frame loop and is not safe for
// concurrent use.
type Controller struct {
	source   PoseSource
	sink     PoseSink
	modes    ModeProvider
	input    InputSource
	scenes   SceneNamer
	persist  Persister
	store    *bookmark.Store
	tracking *bookmark.TrackingState
	policy   restore.Policy
	log      zerolog.Logger

	trackingEnabled bool
	active          bool
	inputFrame      uint64
	inputSeen       bool

	OnRestored engine.EventWithArg[Restored]
	OnWarning  engine.EventWithArg[error]
}

func New(deps Dependencies) (*Controller, error) {
	if deps.Source == nil || deps.Sink == nil || deps.Modes == nil {
		return nil, errors.New("controller: source, sink and mode provider are required")
	}
	if deps.Store == nil {
		deps.Store = bookmark.NewStore()
	}
	if deps.Tracking == nil {
		deps.Tracking = &bookmark.TrackingState{}
	}
	if deps.Policy == nil {
		deps.Policy = restore.NewPolicy()
	}
	return &Controller{
		source:   deps.Source,
		sink:     deps.Sink,
		modes:    deps.Modes,
		input:    deps.Input,
		scenes:   deps.Scenes,
		persist:  deps.Persist,
		store:    deps.Store,
		tracking: deps.Tracking,
		policy:   *deps.Policy,
		log:      deps.Logger,
		active:   true,
	}, nil
}

func (c *Controller) Store() *bookmark.Store { return c.store }

func (c *Controller) Tracking() *bookmark.TrackingState { return c.tracking }

func (c *Controller) TrackingEnabled() bool { return c.trackingEnabled }

func (c *Controller) SetTracking(enabled bool) {
	c.trackingEnabled = enabled
}

// Update runs one frame: tracking first, then bookmark input. Suspended
// frames are ignored, and input is handled at most once per frame index.
func (c *Controller) Update(f Frame) {
	if !c.active || f.Suspended {
		return
	}
	if c.trackingEnabled {
		c.tracking.Update(c.Capture(f.Context))
	}
	if c.inputSeen && c.inputFrame == f.Index {
		return
	}
	c.inputSeen = true
	c.inputFrame = f.Index
	c.handleInput(f)
}

func (c *Controller) handleInput(f Frame) {
	if c.input == nil || !c.input.PrimaryHeld() {
		return
	}
	switch {
	case c.input.Pressed(ActionNext):
		c.Next(f.Context)
	case c.input.Pressed(ActionPrevious):
		c.Previous(f.Context)
	case c.input.Pressed(ActionAdd):
		c.Add(f.Context)
	case c.input.Pressed(ActionOverride):
		c.OverrideSelected(f.Context)
	case c.input.Pressed(ActionRemove):
		c.RemoveSelected()
	case c.input.Pressed(ActionToggleTracking):
		c.SetTracking(!c.trackingEnabled)
		c.log.Info().Bool("tracking", c.trackingEnabled).Msg("Tracking toggled")
	}
}

// Enable marks the controller active and, when tracking is on, restores the
// tracked snapshot once.
func (c *Controller) Enable(f Frame) {
	c.active = true
	if !c.trackingEnabled {
		return
	}
	snap, ok := c.tracking.Consume()
	if !ok {
		return
	}
	c.restore(TrackingName, snap, f.Context)
}

// Disable stops frame processing and hands the tracking slot to the
// persister. A resume pose consumed by Enable is saved again when no frame
// was tracked since.
func (c *Controller) Disable() {
	c.active = false
	if c.trackingEnabled && c.tracking.Rearm() {
		c.saveTracking()
	}
}

// Capture snapshots the live poses. In the editor the capture is tagged as a
// scene view capture regardless of the active mode.
func (c *Controller) Capture(ctx pose.ExecutionContext) pose.Snapshot {
	mode := pose.SceneViewEditor
	if ctx == pose.ContextPlay {
		mode = c.modes.ActiveMode()
	}
	scene := ""
	if c.scenes != nil {
		scene = c.scenes.SceneName()
	}
	cam := c.source.CameraPose()
	if pl, ok := c.source.PlayerPose(); ok {
		return pose.NewSnapshot(cam, &pl, mode, scene)
	}
	return pose.NewSnapshot(cam, nil, mode, scene)
}

// Next selects the following bookmark and restores it.
func (c *Controller) Next(ctx pose.ExecutionContext) {
	if c.store.Len() == 0 {
		return
	}
	c.store.CycleNext()
	c.RestoreSelected(ctx)
}

// Previous selects the preceding bookmark and restores it.
func (c *Controller) Previous(ctx pose.ExecutionContext) {
	if c.store.Len() == 0 {
		return
	}
	c.store.CyclePrevious()
	c.RestoreSelected(ctx)
}

// Select moves to index and restores it.
func (c *Controller) Select(index int, ctx pose.ExecutionContext) error {
	if err := c.store.Select(index); err != nil {
		c.log.Error().Err(err).Msg("Invalid bookmark selection")
		return err
	}
	c.RestoreSelected(ctx)
	return nil
}

// RestoreSelected restores the selected bookmark; nothing happens without a selection.
func (c *Controller) RestoreSelected(ctx pose.ExecutionContext) {
	entry, ok := c.store.Current()
	if !ok {
		return
	}
	c.restore(entry.Name, entry.Snapshot, ctx)
}

// Add captures the live poses under a name derived from the camera position
// and selects the new bookmark. A duplicate name leaves the store untouched.
func (c *Controller) Add(ctx pose.ExecutionContext) (string, error) {
	snap := c.Capture(ctx)
	name := NameFor(snap.CameraPose())
	return name, c.AddNamed(name, snap)
}

// AddNamed stores snap under name and selects it.
func (c *Controller) AddNamed(name string, snap pose.Snapshot) error {
	if err := c.store.Add(name, snap); err != nil {
		c.warn(err)
		return err
	}
	if err := c.store.Select(c.store.Len() - 1); err != nil {
		c.log.Error().Err(err).Msg("Selecting new bookmark failed")
		return err
	}
	c.log.Info().Str("name", name).Str("mode", snap.Mode().String()).Msg("Bookmark added")
	c.saveCollection()
	return nil
}

// OverrideSelected recaptures the selected bookmark in place.
func (c *Controller) OverrideSelected(ctx pose.ExecutionContext) error {
	idx := c.store.Selected()
	if err := c.store.Override(idx, c.Capture(ctx)); err != nil {
		c.log.Error().Err(err).Msg("Override failed")
		return err
	}
	c.log.Info().Int("index", idx).Msg("Bookmark overridden")
	c.saveCollection()
	return nil
}

// RemoveSelected deletes the selected bookmark.
func (c *Controller) RemoveSelected() error {
	idx := c.store.Selected()
	if err := c.store.RemoveAt(idx); err != nil {
		c.log.Error().Err(err).Msg("Remove failed")
		return err
	}
	c.log.Info().Int("index", idx).Int("selected", c.store.Selected()).Msg("Bookmark removed")
	c.saveCollection()
	return nil
}

func (c *Controller) restore(name string, snap pose.Snapshot, ctx pose.ExecutionContext) {
	target := restore.TargetMode(c.modes.ActiveMode(), ctx)
	app := c.policy.Resolve(target, snap)
	res, err := restore.Apply(app, c.sink)
	if err != nil {
		c.warn(err)
	}
	c.log.Debug().
		Str("name", name).
		Str("stored", snap.Mode().String()).
		Str("target", target.String()).
		Bool("camera", res.CameraApplied).
		Bool("player", res.PlayerApplied).
		Msg("Restored viewpoint")
	c.OnRestored.Invoke(Restored{Name: name, Result: res})
}

func (c *Controller) warn(err error) {
	c.log.Warn().Err(err).Msg("Bookmark action skipped")
	c.OnWarning.Invoke(err)
}

func (c *Controller) saveCollection() {
	if c.persist == nil {
		return
	}
	if err := c.persist.SaveCollection(c.store); err != nil {
		c.log.Error().Err(err).Msg("Saving bookmarks failed")
	}
}

func (c *Controller) saveTracking() {
	if c.persist == nil {
		return
	}
	if err := c.persist.SaveTracking(*c.tracking); err != nil {
		c.log.Error().Err(err).Msg("Saving tracking state failed")
	}
}

// NameFor derives a readable bookmark name from a camera position.
func NameFor(p pose.Pose) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", p.Position.X, p.Position.Y, p.Position.Z)
}

package components

import (
	"viewmark/internal/engine"
	"viewmark/internal/pose"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CharacterController moves a character with gravity against a flat floor.
// While disabled it ignores movement, which lets a restore teleport the
// character without the controller fighting the new position.
type CharacterController struct {
	engine.BaseComponent

	// Configuration
	Height float32 // Total height of the capsule/box
	Radius float32 // Radius (half-width) of the character
	FloorY float32

	// Gravity
	UseGravity bool
	Gravity    float32 // Gravity strength (positive = down)

	// Runtime state (not serialized)
	enabled    bool
	velocity   rl.Vector3
	isGrounded bool
	toggles    int
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     1.8,
		Radius:     0.4,
		UseGravity: true,
		Gravity:    20.0,
		enabled:    true,
	}
}

func (c *CharacterController) Enabled() bool {
	return c.enabled
}

// SetEnabled switches the controller. Re-enabling clears velocity so a
// teleported character does not keep the momentum it had before.
func (c *CharacterController) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	c.toggles++
	if enabled {
		c.velocity = rl.Vector3{}
		c.isGrounded = false
	}
}

// Toggles counts enable state changes.
func (c *CharacterController) Toggles() int {
	return c.toggles
}

func (c *CharacterController) Update(deltaTime float32) {
	if !c.enabled {
		return
	}
	if c.UseGravity && !c.isGrounded {
		c.velocity.Y -= c.Gravity * deltaTime
	}
	c.Move(rl.Vector3Scale(c.velocity, deltaTime))
}

// Move moves the character by motion and clamps it to the floor.
// Returns the actual displacement.
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil || !c.enabled {
		return rl.Vector3{}
	}

	original := g.Transform.Position
	next := rl.Vector3Add(original, motion)
	if next.Y <= c.FloorY {
		next.Y = c.FloorY
		if c.velocity.Y < 0 {
			c.velocity.Y = 0
		}
		c.isGrounded = true
	} else if motion.Y != 0 {
		c.isGrounded = false
	}
	g.Transform.Position = next
	return rl.Vector3Subtract(next, original)
}

// Jump gives the character upward velocity when it is on the ground.
func (c *CharacterController) Jump(strength float32) {
	if !c.enabled || !c.isGrounded {
		return
	}
	c.velocity.Y = strength
	c.isGrounded = false
}

func (c *CharacterController) Velocity() rl.Vector3 {
	return c.velocity
}

func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

// OnTeleport implements Teleportable.
func (c *CharacterController) OnTeleport(p pose.Pose) {
	c.velocity = rl.Vector3{}
	c.isGrounded = false
}

package battle

import (
	"github.com/kazarin/soulbox/internal/config"
	"github.com/kazarin/soulbox/internal/core"
)

// SoulMode is one of the soul's movement modes. Modes are switched by the
// attack script, never by the soul itself.
type SoulMode int

const (
	ModeRed    SoulMode = iota // Free four-directional movement
	ModeBlue                   // Gravity with a grounded jump
	ModeGreen                  // Fixed position, facing direction only
	ModePurple                 // One-dimensional movement along a line
)

// SoulModeFromString maps script tags to modes; unknown tags mean red.
func SoulModeFromString(s string) SoulMode {
	switch s {
	case "blue":
		return ModeBlue
	case "green":
		return ModeGreen
	case "purple":
		return ModePurple
	default:
		return ModeRed
	}
}

// String returns the mode's color name.
func (m SoulMode) String() string {
	switch m {
	case ModeRed:
		return "red"
	case ModeBlue:
		return "blue"
	case ModeGreen:
		return "green"
	case ModePurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Facing is the direction the soul faces in green mode.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Soul is the player-controlled avatar dodging hazards inside the battle
// box. Input arrives as held intents accumulated by the platform layer and
// is consumed once per Update.
type Soul struct {
	pos    core.Vec2 // Center
	size   float64
	bounds core.Rect
	mode   SoulMode
	moving bool // Nonzero input-driven velocity in the last update

	// Movement tuning
	speed        float64
	gravity      float64
	jumpImpulse  float64
	maxFallSpeed float64
	lineSpeed    float64

	// Blue mode auxiliary state
	vy       float64
	grounded bool

	// Green mode auxiliary state
	facing Facing

	// Purple mode auxiliary state
	lineA, lineB core.Vec2
	lineT        float64 // Normalized position along the line, [0,1]
}

// NewSoul creates a soul centered in the given bounds with the provided
// movement tuning.
func NewSoul(cfg config.SoulConfig, bounds core.Rect) *Soul {
	s := &Soul{
		size:         cfg.Size,
		speed:        cfg.Speed,
		gravity:      cfg.Gravity,
		jumpImpulse:  cfg.JumpImpulse,
		maxFallSpeed: cfg.MaxFallSpeed,
		lineSpeed:    cfg.LineSpeed,
	}
	s.Reset(bounds)
	return s
}

// Reset recenters the soul in the bounds, returns it to red mode, and
// clears all auxiliary state.
func (s *Soul) Reset(bounds core.Rect) {
	s.bounds = bounds
	s.pos = bounds.Center()
	s.mode = ModeRed
	s.moving = false
	s.vy = 0
	s.grounded = false
	s.facing = FacingUp
	s.lineT = 0.5
	// Default line spans the box horizontally at mid-height
	mid := bounds.Center().Y
	s.lineA = core.Vec2{X: bounds.X + s.size/2, Y: mid}
	s.lineB = core.Vec2{X: bounds.Right() - s.size/2, Y: mid}
}

// SetMode switches the movement mode, resetting only that mode's auxiliary
// state. The transition is always an explicit external call.
func (s *Soul) SetMode(m SoulMode) {
	s.mode = m
	switch m {
	case ModeBlue:
		s.vy = 0
		s.grounded = false
	case ModeGreen:
		s.facing = FacingUp
	case ModePurple:
		s.lineT = 0.5
		s.pos = s.linePoint()
	}
}

// SetLine installs the constraint line for purple mode and snaps the soul
// to its midpoint.
func (s *Soul) SetLine(a, b core.Vec2) {
	s.lineA = a
	s.lineB = b
	s.lineT = 0.5
	if s.mode == ModePurple {
		s.pos = s.linePoint()
	}
}

// Update consumes the current intents and advances the soul by one step.
func (s *Soul) Update(in *core.Intents, dt float64) {
	switch s.mode {
	case ModeBlue:
		s.updateBlue(in, dt)
	case ModeGreen:
		s.updateGreen(in)
	case ModePurple:
		s.updatePurple(in, dt)
	default:
		s.updateRed(in, dt)
	}
}

func (s *Soul) updateRed(in *core.Intents, dt float64) {
	axis := in.Axis()
	s.moving = axis.X != 0 || axis.Y != 0
	if s.moving {
		s.pos = s.pos.Add(axis.Normalized().Scale(s.speed * dt))
	}
	s.clamp()
}

func (s *Soul) updateBlue(in *core.Intents, dt float64) {
	axis := in.Axis()
	jumped := false
	if in.TakeJump() && s.grounded {
		s.vy = -s.jumpImpulse
		s.grounded = false
		jumped = true
	}

	s.pos.X += axis.X * s.speed * dt
	s.vy += s.gravity * dt
	if s.vy > s.maxFallSpeed {
		s.vy = s.maxFallSpeed
	}
	s.pos.Y += s.vy * dt

	floor := s.bounds.Bottom() - s.size/2
	ceiling := s.bounds.Y + s.size/2
	s.grounded = false
	if s.pos.Y >= floor {
		s.pos.Y = floor
		s.vy = 0
		s.grounded = true
	} else if s.pos.Y < ceiling {
		s.pos.Y = ceiling
		s.vy = 0
	}

	s.moving = axis.X != 0 || jumped
	s.clamp()
}

func (s *Soul) updateGreen(in *core.Intents) {
	// Position is pinned; only the facing changes, for attacks that
	// approach from a declared side.
	axis := in.Axis()
	switch {
	case axis.Y < 0:
		s.facing = FacingUp
	case axis.Y > 0:
		s.facing = FacingDown
	case axis.X < 0:
		s.facing = FacingLeft
	case axis.X > 0:
		s.facing = FacingRight
	}
	s.moving = false
}

func (s *Soul) updatePurple(in *core.Intents, dt float64) {
	axis := in.Axis()
	s.moving = axis.X != 0
	lineLen := s.lineB.Sub(s.lineA).Len()
	if s.moving && lineLen > 0 {
		s.lineT = core.ClampF(s.lineT+axis.X*(s.lineSpeed/lineLen)*dt, 0, 1)
	}
	s.pos = s.linePoint()
}

// clamp keeps the soul's full hitbox inside the arena bounds.
func (s *Soul) clamp() {
	half := s.size / 2
	s.pos.X = core.ClampF(s.pos.X, s.bounds.X+half, s.bounds.Right()-half)
	s.pos.Y = core.ClampF(s.pos.Y, s.bounds.Y+half, s.bounds.Bottom()-half)
}

func (s *Soul) linePoint() core.Vec2 {
	return s.lineA.Add(s.lineB.Sub(s.lineA).Scale(s.lineT))
}

// Rect returns the soul's hitbox.
func (s *Soul) Rect() core.Rect {
	half := s.size / 2
	return core.NewRect(s.pos.X-half, s.pos.Y-half, s.size, s.size)
}

// Pos returns the soul's center position.
func (s *Soul) Pos() core.Vec2 {
	return s.pos
}

// Mode returns the current movement mode.
func (s *Soul) Mode() SoulMode {
	return s.mode
}

// Facing returns the green-mode facing direction.
func (s *Soul) Facing() Facing {
	return s.facing
}

// Grounded reports whether the soul is resting on the arena floor in blue
// mode.
func (s *Soul) Grounded() bool {
	return s.grounded
}

// LineT returns the normalized purple-mode line position.
func (s *Soul) LineT() float64 {
	return s.lineT
}

// Moving reports whether the soul had nonzero input-driven velocity during
// its last update. Blue and orange damage classes key off this.
func (s *Soul) Moving() bool {
	return s.moving
}

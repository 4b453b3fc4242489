// Package battle implements the real-time bullet-pattern simulation: the
// soul (player avatar) state machine, the fixed-capacity projectile manager,
// multi-phase beam hazards, the attack script engine, and the battle phase
// state machine that ties them together.
package battle

import (
	"github.com/kazarin/soulbox/internal/core"
)

// Shape selects the collision geometry of a projectile.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// DamageClass gates whether an exact hit actually applies damage.
// The color names follow the usual bullet-pattern convention.
type DamageClass int

const (
	ClassWhite  DamageClass = iota // Always damages
	ClassBlue                      // Damages only a moving soul
	ClassOrange                    // Damages only a still soul
	ClassGreen                     // Heals instead of harming
)

// String returns the class's conventional color name.
func (c DamageClass) String() string {
	switch c {
	case ClassWhite:
		return "white"
	case ClassBlue:
		return "blue"
	case ClassOrange:
		return "orange"
	case ClassGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Projectile is a single movable hazard. Instances are owned exclusively by
// the manager slot holding them and are never allocated during steady-state
// play; Spawn reinitializes an inactive slot in place.
type Projectile struct {
	Pos    core.Vec2 // Center position
	Vel    core.Vec2 // Cells per second (ignored while a motion kind is set)
	Size   float64   // Edge length for rects, diameter for circles
	Shape  Shape
	Class  DamageClass
	Damage int

	// Motion holds the parametric path state; MotionLinear means plain
	// velocity integration.
	Motion MotionState

	// UpdateFunc, when set, replaces the built-in motion entirely.
	// Reserved for scripted one-off hazards.
	UpdateFunc func(p *Projectile, dt float64)

	// Beam holds the multi-phase lifecycle for beam hazards; nil otherwise.
	Beam *Beam

	active bool
	grazed bool // Graze already rewarded for this projectile
}

// Active reports whether the slot currently holds a live projectile.
func (p *Projectile) Active() bool {
	return p.active
}

// Radius returns the effective circle radius (half the size).
func (p *Projectile) Radius() float64 {
	return p.Size / 2
}

// Rect returns the projectile's axis-aligned bounding box.
func (p *Projectile) Rect() core.Rect {
	half := p.Size / 2
	return core.NewRect(p.Pos.X-half, p.Pos.Y-half, p.Size, p.Size)
}

// Hits performs the shape-dependent exact-hit test against the soul.
// Beam projectiles delegate to the beam lifecycle, which only reports hits
// during its fire phase.
func (p *Projectile) Hits(soul core.Rect) bool {
	if !p.active {
		return false
	}
	if p.Beam != nil {
		return p.Beam.Hits(soul.Center(), soul.W/2)
	}
	switch p.Shape {
	case ShapeCircle:
		return core.CirclesOverlap(p.Pos, p.Radius(), soul.Center(), soul.W/2)
	default:
		return p.Rect().Intersects(soul)
	}
}

// Grazes reports a near-miss: the hitbox expanded by margin overlaps the
// soul while the exact-hit test is false. Graze and hit are mutually
// exclusive for one projectile in one frame. Beams never graze.
func (p *Projectile) Grazes(soul core.Rect, margin float64) bool {
	if !p.active || p.Beam != nil {
		return false
	}
	if p.Hits(soul) {
		return false
	}
	switch p.Shape {
	case ShapeCircle:
		return core.CirclesOverlap(p.Pos, p.Radius()+margin, soul.Center(), soul.W/2)
	default:
		return p.Rect().Expand(margin).Intersects(soul)
	}
}

// advance moves the projectile by one time step.
func (p *Projectile) advance(dt float64) {
	if p.UpdateFunc != nil {
		p.UpdateFunc(p, dt)
		return
	}
	if p.Beam != nil {
		p.Beam.Tick()
		return
	}
	if p.Motion.Kind != MotionLinear {
		p.Motion.Elapsed += dt
		p.Pos = p.Motion.Position()
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// deactivate returns the slot to the inactive set.
func (p *Projectile) deactivate() {
	p.active = false
	p.UpdateFunc = nil
	p.Beam = nil
}

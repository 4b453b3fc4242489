package battle

import (
	"math"

	"github.com/kazarin/soulbox/internal/core"
)

// MotionKind selects one of the built-in parametric path families.
// Each projectile carries a kind plus a parameter record; a single dispatch
// function computes the position per kind. This keeps every projectile's
// code identity uniform and the math testable in isolation.
type MotionKind int

const (
	MotionLinear MotionKind = iota // Plain velocity integration
	MotionSine
	MotionCosine
	MotionBoth // Simultaneous sine and cosine, elliptical paths
	MotionSpiral
	MotionEight // Figure-eight via the lemniscate parametrization
)

// MotionKindFromString maps script tags to motion kinds.
// Unknown tags fall back to sine, the mildest oscillation.
func MotionKindFromString(s string) MotionKind {
	switch s {
	case "sine", "":
		return MotionSine
	case "cosine":
		return MotionCosine
	case "both":
		return MotionBoth
	case "spiral":
		return MotionSpiral
	case "eight", "figure-eight":
		return MotionEight
	default:
		return MotionSine
	}
}

// MotionParams is the per-projectile parameter record for parametric paths.
type MotionParams struct {
	Amplitude    float64 // Oscillation amplitude in cells
	Frequency    float64 // Oscillation angular frequency, radians per second
	Phase        float64 // Phase offset, radians
	AngularSpeed float64 // Spiral rotation speed, radians per second
	Growth       float64 // Spiral radius growth, cells per second
	Scale        float64 // Lemniscate size in cells
}

// MotionState is the full parametric path state: origin and base direction
// of travel, forward speed, elapsed wave time, and the kind and parameters.
type MotionState struct {
	Kind    MotionKind
	Params  MotionParams
	Origin  core.Vec2 // Spawn point of the base path
	Dir     core.Vec2 // Unit base direction of travel
	Speed   float64   // Forward speed along Dir, cells per second
	Elapsed float64   // Wave time in seconds
}

// BaseCenter returns the base-path point for the current wave time: the
// origin advanced along the travel direction, before any oscillation offset.
func (m *MotionState) BaseCenter() core.Vec2 {
	return m.Origin.Add(m.Dir.Scale(m.Speed * m.Elapsed))
}

// Position computes the projectile position for the current wave time.
// The offset returned by the kind dispatch is expressed in the path's local
// frame (u along Dir, v along the 90-degree rotation of Dir) and layered on
// the base forward motion.
func (m *MotionState) Position() core.Vec2 {
	u, v := motionOffset(m.Kind, m.Elapsed, m.Params)
	perp := m.Dir.Perp()
	return m.BaseCenter().Add(m.Dir.Scale(u)).Add(perp.Scale(v))
}

// motionOffset computes the local-frame displacement (u forward, v
// perpendicular) for a kind at wave time t.
func motionOffset(kind MotionKind, t float64, p MotionParams) (u, v float64) {
	switch kind {
	case MotionSine:
		return 0, math.Sin(t*p.Frequency+p.Phase) * p.Amplitude
	case MotionCosine:
		return 0, math.Cos(t*p.Frequency+p.Phase) * p.Amplitude
	case MotionBoth:
		a := t*p.Frequency + p.Phase
		return math.Cos(a) * p.Amplitude, math.Sin(a) * p.Amplitude
	case MotionSpiral:
		angle := t*p.AngularSpeed + p.Phase
		radius := p.Growth * t
		return math.Cos(angle) * radius, math.Sin(angle) * radius
	case MotionEight:
		a := t*p.Frequency + p.Phase
		denom := 1 + math.Sin(a)*math.Sin(a)
		return math.Cos(a) * p.Scale / denom, math.Sin(a) * math.Cos(a) * p.Scale / denom
	default:
		return 0, 0
	}
}
